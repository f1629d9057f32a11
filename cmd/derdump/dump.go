package main

import (
	"fmt"
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
	"github.com/spf13/cobra"
	"io"
	"strings"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [input]",
	Short: "Print the TLV structure of an encoding, without a schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := input(cmd, args)
		if err != nil {
			return err
		}
		return dump(cmd.OutOrStdout(), b, 0)
	},
}

var universalNames = map[uint32]string{
	der.TagBoolean:         "BOOLEAN",
	der.TagInteger:         "INTEGER",
	der.TagBitString:       "BIT STRING",
	der.TagOctetString:     "OCTET STRING",
	der.TagNull:            "NULL",
	der.TagObjectID:        "OBJECT IDENTIFIER",
	der.TagEnumerated:      "ENUMERATED",
	12:                     "UTF8String",
	der.TagSequence:        "SEQUENCE",
	der.TagSet:             "SET",
	19:                     "PrintableString",
	22:                     "IA5String",
	der.TagUTCTime:         "UTCTime",
	der.TagGeneralizedTime: "GeneralizedTime",
	der.TagGeneralString:   "GeneralString",
}

// dump prints each element of b on its own line, with the contents of constructed
// elements indented below them.
func dump(w io.Writer, b []byte, depth int) error {
	indent := strings.Repeat("  ", depth)
	for pos := 0; pos < len(b); {
		if b[pos] == 0 && pos+1 < len(b) && b[pos+1] == 0 {
			// end-of-contents, consumed with its element
			return merry.Errorf("unexpected end-of-contents at offset %d", pos)
		}
		class, num, l, hl, err := der.ParseHeader(b[pos:])
		if err != nil {
			return merry.Prependf(err, "offset %d", pos)
		}
		total, err := der.TLVLength(b[pos:])
		if err != nil {
			return merry.Prependf(err, "offset %d", pos)
		}
		content := b[pos+hl : pos+total]
		if l == der.LengthIndefinite {
			// drop the end-of-contents
			content = content[:len(content)-2]
		}

		name := fmt.Sprintf("[%v %d]", class.Base(), num)
		if class.Base() == der.ClassUniversal {
			if un, ok := universalNames[num]; ok {
				name = un
			}
		}
		length := fmt.Sprint(len(content))
		if l == der.LengthIndefinite {
			length = "indefinite"
		}
		fmt.Fprintf(w, "%s%s (%s)", indent, name, length)

		if class.Constructed() {
			fmt.Fprintln(w)
			if err := dump(w, content, depth+1); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, ": %s\n", primitiveString(class, num, content))
		}
		pos += total
	}
	return nil
}

func primitiveString(class der.Class, num uint32, content []byte) string {
	if class.Base() == der.ClassUniversal {
		switch num {
		case der.TagObjectID:
			if s, err := der.OIDFromContent(content); err == nil {
				return s
			}
		case der.TagInteger, der.TagEnumerated:
			if i, err := der.ParseIntegerContent(content); err == nil {
				return i.String()
			}
		case der.TagBoolean:
			if len(content) == 1 {
				if content[0] != 0 {
					return "TRUE"
				}
				return "FALSE"
			}
		case der.TagUTCTime, der.TagGeneralizedTime, 12, 19, 22:
			return fmt.Sprintf("%q", content)
		}
	}
	return fmt.Sprintf("%x", content)
}
