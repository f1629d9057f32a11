package asn1der

import (
	"github.com/gemalto/asn1der/der"
	"github.com/stretchr/testify/require"
	"testing"
)

/*
TEST DEFINITIONS EXPLICIT TAGS ::= BEGIN

Simple ::= SEQUENCE {
	version [0] INTEGER { v1(0), v2(1) } DEFAULT v1,
	serial  INTEGER,
	flag    BOOLEAN DEFAULT FALSE,
	name    OCTET STRING,
	id      OBJECT IDENTIFIER OPTIONAL,
	note    [1] IMPLICIT GeneralString OPTIONAL,
	any     ANY OPTIONAL }

Choice3 ::= CHOICE { num INTEGER, str OCTET STRING, tagged [2] IMPLICIT BOOLEAN }

Holder ::= SEQUENCE { c Choice3, items SEQUENCE OF INTEGER }

Unordered ::= SET {
	i INTEGER,
	b BOOLEAN,
	o [3] IMPLICIT OCTET STRING OPTIONAL,
	d [4] IMPLICIT INTEGER DEFAULT 7 }

Bag ::= SET OF OCTET STRING

Bits ::= BIT STRING

AnyChoice ::= CHOICE { num INTEGER, other ANY }

Times ::= SEQUENCE { utc UTCTime, gen GeneralizedTime }

HighTag ::= [APPLICATION 16384] IMPLICIT INTEGER

Doubly ::= [1] IMPLICIT [2] EXPLICIT INTEGER

Wrapped ::= SEQUENCE { inner [5] Simple OPTIONAL, enum ENUMERATED { a(0), b(1) }, nul NULL }

Str ::= OCTET STRING

id-test OBJECT IDENTIFIER ::= { iso(1) 2 3 }
id-sub OBJECT IDENTIFIER ::= { id-test 4 }

END
*/
var testDefinitions = []Definition{
	{Name: "TEST", Type: TypeDefinitions, Flags: FlagExplicit | FlagDown},

	{Name: "Simple", Type: TypeSequence, Flags: FlagDown | FlagRight},
	{Name: "version", Type: TypeInteger, Flags: FlagDown | FlagRight},
	{Type: TypeTag, Flags: FlagContext | FlagRight, Value: "0"},
	{Type: TypeDefault, Flags: FlagRight, Value: "v1"},
	{Name: "v1", Type: TypeConstant, Flags: FlagRight, Value: "0"},
	{Name: "v2", Type: TypeConstant, Value: "1"},
	{Name: "serial", Type: TypeInteger, Flags: FlagRight},
	{Name: "flag", Type: TypeBoolean, Flags: FlagDown | FlagRight},
	{Type: TypeDefault, Value: "FALSE"},
	{Name: "name", Type: TypeOctetString, Flags: FlagRight},
	{Name: "id", Type: TypeObjectID, Flags: FlagOptional | FlagRight},
	{Name: "note", Type: TypeGeneralString, Flags: FlagOptional | FlagDown | FlagRight},
	{Type: TypeTag, Flags: FlagImplicit, Value: "1"},
	{Name: "any", Type: TypeAny, Flags: FlagOptional},

	{Name: "Choice3", Type: TypeChoice, Flags: FlagDown | FlagRight},
	{Name: "num", Type: TypeInteger, Flags: FlagRight},
	{Name: "str", Type: TypeOctetString, Flags: FlagRight},
	{Name: "tagged", Type: TypeBoolean, Flags: FlagDown},
	{Type: TypeTag, Flags: FlagImplicit, Value: "2"},

	{Name: "Holder", Type: TypeSequence, Flags: FlagDown | FlagRight},
	{Name: "c", Type: TypeIdentifier, Flags: FlagRight, Value: "Choice3"},
	{Name: "items", Type: TypeSequenceOf, Flags: FlagDown},
	{Type: TypeInteger},

	{Name: "Unordered", Type: TypeSet, Flags: FlagDown | FlagRight},
	{Name: "i", Type: TypeInteger, Flags: FlagRight},
	{Name: "b", Type: TypeBoolean, Flags: FlagRight},
	{Name: "o", Type: TypeOctetString, Flags: FlagOptional | FlagDown | FlagRight},
	{Type: TypeTag, Flags: FlagImplicit, Value: "3"},
	{Name: "d", Type: TypeInteger, Flags: FlagDown},
	{Type: TypeTag, Flags: FlagImplicit | FlagRight, Value: "4"},
	{Type: TypeDefault, Value: "7"},

	{Name: "Bag", Type: TypeSetOf, Flags: FlagDown | FlagRight},
	{Type: TypeOctetString},

	{Name: "Bits", Type: TypeBitString, Flags: FlagRight},

	{Name: "AnyChoice", Type: TypeChoice, Flags: FlagDown | FlagRight},
	{Name: "num", Type: TypeInteger, Flags: FlagRight},
	{Name: "other", Type: TypeAny},

	{Name: "Times", Type: TypeSequence, Flags: FlagDown | FlagRight},
	{Name: "utc", Type: TypeUTCTime, Flags: FlagRight},
	{Name: "gen", Type: TypeGeneralizedTime},

	{Name: "HighTag", Type: TypeInteger, Flags: FlagDown | FlagRight},
	{Type: TypeTag, Flags: FlagApplication | FlagImplicit, Value: "16384"},

	{Name: "Doubly", Type: TypeInteger, Flags: FlagDown | FlagRight},
	{Type: TypeTag, Flags: FlagContext | FlagImplicit | FlagRight, Value: "1"},
	{Type: TypeTag, Flags: FlagContext | FlagExplicit, Value: "2"},

	{Name: "Wrapped", Type: TypeSequence, Flags: FlagDown | FlagRight},
	{Name: "inner", Type: TypeIdentifier, Flags: FlagOptional | FlagDown | FlagRight, Value: "Simple"},
	{Type: TypeTag, Value: "5"},
	{Name: "enum", Type: TypeEnumerated, Flags: FlagDown | FlagRight},
	{Name: "a", Type: TypeConstant, Flags: FlagRight, Value: "0"},
	{Name: "b", Type: TypeConstant, Value: "1"},
	{Name: "nul", Type: TypeNull},

	{Name: "Str", Type: TypeOctetString, Flags: FlagRight},

	{Name: "id-test", Type: TypeObjectID, Flags: FlagAssign | FlagDown | FlagRight},
	{Name: "iso", Type: TypeConstant, Flags: FlagRight, Value: "1"},
	{Type: TypeConstant, Flags: FlagRight, Value: "2"},
	{Type: TypeConstant, Value: "3"},
	{Name: "id-sub", Type: TypeObjectID, Flags: FlagAssign | FlagDown},
	{Type: TypeConstant, Flags: FlagRight, Value: "id-test"},
	{Type: TypeConstant, Value: "4"},
}

func testDefs(t *testing.T) *Definitions {
	t.Helper()
	d, err := ArrayToTree(testDefinitions)
	require.NoError(t, err)
	return d
}

func create(t *testing.T, name string) *Node {
	t.Helper()
	n, err := testDefs(t).CreateElement(name)
	require.NoError(t, err)
	return n
}

// Hex2bytes converts hex string to bytes.  Any non-hex characters in the string are stripped first.
// panics on error
func Hex2bytes(s string) []byte {
	b, err := der.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Encodings shared by the tests.
var (
	simpleMinimal  = "30 08  02 01 05  04 03 616263"
	simpleFull     = "30 1B  A0 03 02 01 01  02 01 05  01 01 FF  04 03 616263  06 03 550403  81 02 6869  05 00"
	wrappedFull    = "30 11  A5 0A " + simpleMinimal + "  0A 01 01  05 00"
	wrappedNoInner = "30 05  0A 01 01  05 00"
	holderSample   = "30 0B  02 01 05  30 06 02 01 01 02 01 02"
)
