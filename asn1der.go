package asn1der

import (
	"github.com/gemalto/flume"
)

var log = flume.New("asn1der")

// Decode creates a value tree for the named type of defs, and decodes b into it.
func Decode(defs *Definitions, typeName string, b []byte) (*Node, error) {
	n, err := defs.CreateElement(typeName)
	if err != nil {
		return nil, err
	}
	return DecodeDER(n, b)
}

// Encode is EncodeDER of the whole tree.
func Encode(n *Node) ([]byte, error) {
	return EncodeDER(n, "")
}
