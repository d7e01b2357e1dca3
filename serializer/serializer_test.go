package serializer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-flint/flint/errors"
)

func roundTrip(t *testing.T, ser Serializer, values []interface{}) []interface{} {
	var buf bytes.Buffer
	err := ser.Write(&buf, values)
	require.Nil(t, err)
	decoded, err := ser.Read(&buf)
	require.Nil(t, err)
	return decoded
}

func TestPlainSerializerRoundTrip(t *testing.T) {
	values := []interface{}{1, 2, 3, "four", 5.0}
	decoded := roundTrip(t, NewPlainSerializer(2), values)
	require.Equal(t, values, decoded)
}

func TestPlainSerializerSingleBatch(t *testing.T) {
	values := []interface{}{1, 2, 3}
	decoded := roundTrip(t, NewPlainSerializer(16), values)
	require.Equal(t, values, decoded)
}

func TestPlainSerializerEmpty(t *testing.T) {
	decoded := roundTrip(t, NewPlainSerializer(4), nil)
	require.Len(t, decoded, 0)
}

func TestUTF8SerializerRoundTrip(t *testing.T) {
	values := []interface{}{"a", "", "long line with spaces", "ünïcode"}
	decoded := roundTrip(t, NewUTF8Serializer(1), values)
	require.Equal(t, values, decoded)
}

func TestUTF8SerializerRejectsNonStrings(t *testing.T) {
	var buf bytes.Buffer
	err := NewUTF8Serializer(1).Write(&buf, []interface{}{42})
	require.NotNil(t, err)
}

func TestPairSerializerRoundTrip(t *testing.T) {
	ser := NewPairSerializer(NewUTF8Serializer(1), NewUTF8Serializer(1), 1)
	values := []interface{}{
		Pair{Key: "path/a.txt", Value: "contents of a"},
		Pair{Key: "path/b.txt", Value: "contents of b"},
	}
	decoded := roundTrip(t, ser, values)
	require.Equal(t, values, decoded)
}

func TestPairSerializerNestedPlain(t *testing.T) {
	ser := NewPairSerializer(NewUTF8Serializer(1), NewPlainSerializer(4), 1)
	values := []interface{}{Pair{Key: "k", Value: 99}}
	decoded := roundTrip(t, ser, values)
	require.Equal(t, values, decoded)
}

func TestResolveUnknownName(t *testing.T) {
	_, err := Resolve("msgpack", 1)
	require.IsType(t, errors.UnknownSerializerError{}, err)
}

func TestResolvePairRequiresNested(t *testing.T) {
	_, err := Resolve(KindPair, 1)
	require.NotNil(t, err)
	_, err = Resolve(KindPair, 1, NewUTF8Serializer(1), NewUTF8Serializer(1))
	require.Nil(t, err)
}

func TestDescriptorRoundTrip(t *testing.T) {
	sers := []Serializer{
		NewPlainSerializer(16),
		NewUTF8Serializer(1),
		NewPairSerializer(NewUTF8Serializer(1), NewPlainSerializer(8), 2),
		NewPairSerializer(
			NewPairSerializer(NewUTF8Serializer(1), NewUTF8Serializer(1), 1),
			NewPlainSerializer(4),
			1,
		),
	}
	for _, ser := range sers {
		rebuilt, err := FromDescriptor(ser.Describe())
		require.Nil(t, err)
		require.Equal(t, ser.Describe(), rebuilt.Describe())
	}
}

func TestFromDescriptorMalformed(t *testing.T) {
	for _, desc := range []string{"", "plain", "plain:", "pair(utf8:1):1", "plain:16garbage", "msgpack:4"} {
		_, err := FromDescriptor(desc)
		require.NotNil(t, err, "descriptor %q should not parse", desc)
	}
}

func TestWriteBlocksPreservesOrder(t *testing.T) {
	values := []interface{}{0, 1, 2, 3, 4, 5, 6}
	ser := NewPlainSerializer(2)
	var buf bytes.Buffer
	err := WriteBlocks(&buf, ser, values, 3)
	require.Nil(t, err)
	blocks, err := ReadBlocks(&buf)
	require.Nil(t, err)
	require.Len(t, blocks, 3)
	var reassembled []interface{}
	for _, block := range blocks {
		decoded, err := ser.Read(bytes.NewReader(block))
		require.Nil(t, err)
		reassembled = append(reassembled, decoded...)
	}
	require.Equal(t, values, reassembled)
}

func TestWriteBlocksMorePartitionsThanValues(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBlocks(&buf, NewPlainSerializer(1), []interface{}{1}, 4)
	require.Nil(t, err)
	blocks, err := ReadBlocks(&buf)
	require.Nil(t, err)
	require.Len(t, blocks, 4)
}
