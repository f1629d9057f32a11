package main

import (
	"bytes"
	"encoding/base64"
	"encoding/pem"
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der"
	"github.com/gemalto/asn1der/der"
	"github.com/gemalto/asn1der/pkix"
	"github.com/gemalto/flume"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strings"
)

const (
	FormatAuto   = "auto"
	FormatHex    = "hex"
	FormatBase64 = "base64"
	FormatPEM    = "pem"
	FormatBinary = "bin"
)

var rootCmd = &cobra.Command{
	Use:   "derdump",
	Short: "Decode and inspect DER and BER encodings",
	Long: `derdump decodes DER and BER encodings.

Input is read from a file (-f), the first argument, or standard in.  It may
be hex, base64, PEM or binary, and is detected unless -i is given.  When
reading hex, any non-hex characters, such as whitespace, are ignored.

Decoding against a type needs definitions: a JSON definitions file (-d), or,
by default, the built in PKIX1 certificate module.

Examples:

    derdump dump 30080201050403616263
    derdump decode -t Certificate -f cert.pem
    derdump span -t Certificate -p tbsCertificate.subject -f cert.pem`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := flume.InfoLevel
		if opts.verbose {
			level = flume.DebugLevel
		}
		return flume.Configure(flume.Config{
			Development:  true,
			DefaultLevel: level,
		})
	},
}

var opts struct {
	inFormat string
	inFile   string
	defsFile string
	typeName string
	verbose  bool
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.inFormat, "in", "i", FormatAuto, "input format: auto|hex|base64|pem|bin")
	pf.StringVarP(&opts.inFile, "file", "f", "", "input file name, defaults to the first argument, or stdin")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log decoding details")

	rootCmd.AddCommand(dumpCmd, decodeCmd, spanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addTypeFlags adds the flags of commands which decode against a type.
func addTypeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.defsFile, "defs", "d", "", "JSON definitions file, defaults to the PKIX1 module")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "Certificate", "name of the type to decode")
}

func loadDefinitions() (*asn1der.Definitions, error) {
	if opts.defsFile == "" {
		return pkix.Definitions()
	}
	f, err := os.Open(opts.defsFile)
	if err != nil {
		return nil, merry.Prepend(err, "opening definitions file")
	}
	defer f.Close()
	return asn1der.LoadDefinitions(f)
}

// readInput returns the raw input of a command: the -f file, the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	switch {
	case opts.inFile != "":
		b, err := os.ReadFile(opts.inFile)
		return b, merry.Prepend(err, "reading input file")
	case len(args) > 0:
		return []byte(strings.Join(args, "")), nil
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		return b, merry.Prepend(err, "reading standard input")
	}
}

// decodeInput turns input in the given format into binary.
func decodeInput(in []byte, format string) ([]byte, error) {
	if format == FormatAuto {
		format = detectFormat(in)
	}
	switch format {
	case FormatBinary:
		return in, nil
	case FormatHex:
		return der.ParseHex(string(in))
	case FormatBase64:
		b, err := base64.StdEncoding.DecodeString(string(bytes.Join(bytes.Fields(in), nil)))
		return b, merry.Prepend(err, "decoding base64")
	case FormatPEM:
		block, _ := pem.Decode(in)
		if block == nil {
			return nil, merry.New("no PEM block found")
		}
		return block.Bytes, nil
	}
	return nil, merry.Errorf("invalid input format: %s", format)
}

func detectFormat(in []byte) string {
	t := bytes.TrimSpace(in)
	switch {
	case bytes.HasPrefix(t, []byte("-----BEGIN")):
		return FormatPEM
	case len(t) > 0 && isText(t, isHexChar):
		return FormatHex
	case len(t) > 0 && isText(t, isBase64Char):
		return FormatBase64
	}
	return FormatBinary
}

func isText(b []byte, ok func(c byte) bool) bool {
	for _, c := range b {
		if !ok(c) && c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}

func isHexChar(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isBase64Char(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '+' || c == '/' || c == '='
}

func input(cmd *cobra.Command, args []string) ([]byte, error) {
	in, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return decodeInput(in, opts.inFormat)
}
