package flint

import (
	"github.com/go-flint/flint/serializer"
)

// A Serializer converts an ordered sequence of local values to and from a
// byte stream. The instance which encodes a dataset must be structurally
// identical to the one which decodes it; Handles carry their serializer so
// the pairing cannot drift.
type Serializer = serializer.Serializer

// Pair is a key/value record produced by paired sources such as
// WholeTextFiles
type Pair = serializer.Pair
