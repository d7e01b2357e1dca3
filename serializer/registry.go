package serializer

import (
	"strconv"
	"strings"

	"github.com/go-flint/flint/errors"
)

const (
	// KindPlain names the gob/lz4 serializer for arbitrary values
	KindPlain = "plain"
	// KindUTF8 names the length-prefixed UTF-8 string serializer
	KindUTF8 = "utf8"
	// KindPair names the nested key/value serializer
	KindPair = "pair"
)

// Resolve constructs a Serializer by name. Pair serializers require exactly
// two nested serializers (key, then value). Unknown names fail fast.
func Resolve(name string, batchSize int, nested ...Serializer) (Serializer, error) {
	switch name {
	case KindPlain:
		return NewPlainSerializer(batchSize), nil
	case KindUTF8:
		return NewUTF8Serializer(batchSize), nil
	case KindPair:
		if len(nested) != 2 {
			return nil, errors.UnknownSerializerError{Name: name}
		}
		return NewPairSerializer(nested[0], nested[1], batchSize), nil
	default:
		return nil, errors.UnknownSerializerError{Name: name}
	}
}

// FromDescriptor reconstructs a Serializer from a structural descriptor
// produced by Describe. The result is structurally identical to the instance
// which produced the descriptor, which is what makes encode/decode pairing
// safe across the driver/engine boundary.
func FromDescriptor(descriptor string) (Serializer, error) {
	ser, rest, err := parseDescriptor(descriptor)
	if err != nil || rest != "" {
		return nil, errors.SerializerDescriptorError{Descriptor: descriptor}
	}
	return ser, nil
}

// parseDescriptor parses one serializer descriptor from the head of s,
// returning the unconsumed remainder
func parseDescriptor(s string) (Serializer, string, error) {
	if strings.HasPrefix(s, KindPair+"(") {
		key, rest, err := parseDescriptor(s[len(KindPair)+1:])
		if err != nil {
			return nil, "", err
		}
		if !strings.HasPrefix(rest, ",") {
			return nil, "", errors.SerializerDescriptorError{Descriptor: s}
		}
		value, rest, err := parseDescriptor(rest[1:])
		if err != nil {
			return nil, "", err
		}
		if !strings.HasPrefix(rest, "):") {
			return nil, "", errors.SerializerDescriptorError{Descriptor: s}
		}
		batchSize, rest, err := parseBatchSize(rest[2:])
		if err != nil {
			return nil, "", err
		}
		return NewPairSerializer(key, value, batchSize), rest, nil
	}
	sep := strings.Index(s, ":")
	if sep < 0 {
		return nil, "", errors.SerializerDescriptorError{Descriptor: s}
	}
	name := s[:sep]
	batchSize, rest, err := parseBatchSize(s[sep+1:])
	if err != nil {
		return nil, "", err
	}
	ser, err := Resolve(name, batchSize)
	if err != nil {
		return nil, "", err
	}
	return ser, rest, nil
}

// parseBatchSize parses a leading integer from s, returning the remainder
func parseBatchSize(s string) (int, string, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, "", errors.SerializerDescriptorError{Descriptor: s}
	}
	batchSize, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, "", err
	}
	return batchSize, s[end:], nil
}
