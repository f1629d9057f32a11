package main

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der"
	"github.com/gemalto/asn1der/internal/asn1util"
	"github.com/spf13/cobra"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

var rootCmd = &cobra.Command{
	Use:   "asn1gen",
	Short: "Generates go source declaring an ASN.1 definitions array",
	Long: `asn1gen reads a JSON array of definitions, as taken by asn1der.LoadDefinitions,
checks it builds, and writes go source declaring the same array as a []asn1der.Definition,
along with a constant for each OBJECT IDENTIFIER value assignment in the module.`,
	Args: cobra.NoArgs,
	RunE: run,
}

var opts struct {
	input   string
	output  string
	pkg     string
	varName string
}

func init() {
	rootCmd.Flags().StringVarP(&opts.input, "input", "i", "", "input `filename` of definitions.  Required.")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output `filename`.  Defaults to standard out.")
	rootCmd.Flags().StringVarP(&opts.pkg, "package", "p", "main", "go `package` name in generated code.")
	rootCmd.Flags().StringVarP(&opts.varName, "var", "v", "", "name of the generated `variable`.  Defaults to the module name followed by Definitions.")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return merry.Prepend(err, "opening input file")
	}
	defer f.Close()

	defs, err := asn1der.ReadDefinitions(bufio.NewReader(f))
	if err != nil {
		return merry.Prepend(err, "reading input file")
	}

	src, err := genCode(defs, opts.pkg, opts.varName)
	if err != nil {
		return merry.Prepend(err, "generating code")
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write([]byte(src))
		return err
	}
	p, err := filepath.Abs(opts.output)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "writing to", p)
	return os.WriteFile(p, []byte(src), 0o644)
}

type defVal struct {
	Name  string
	Type  string
	Flags string
	Value string
}

type oidVal struct {
	Name  string
	ASN1  string
	Value string
}

type inputs struct {
	Package string
	Module  string
	Var     string
	Defs    []defVal
	OIDs    []oidVal
}

// typeNames are the names of the asn1der Type constants.
var typeNames = map[asn1der.Type]string{
	asn1der.TypeNull:            "TypeNull",
	asn1der.TypeBoolean:         "TypeBoolean",
	asn1der.TypeInteger:         "TypeInteger",
	asn1der.TypeEnumerated:      "TypeEnumerated",
	asn1der.TypeObjectID:        "TypeObjectID",
	asn1der.TypeUTCTime:         "TypeUTCTime",
	asn1der.TypeGeneralizedTime: "TypeGeneralizedTime",
	asn1der.TypeOctetString:     "TypeOctetString",
	asn1der.TypeGeneralString:   "TypeGeneralString",
	asn1der.TypeBitString:       "TypeBitString",
	asn1der.TypeSequence:        "TypeSequence",
	asn1der.TypeSequenceOf:      "TypeSequenceOf",
	asn1der.TypeSet:             "TypeSet",
	asn1der.TypeSetOf:           "TypeSetOf",
	asn1der.TypeChoice:          "TypeChoice",
	asn1der.TypeAny:             "TypeAny",
	asn1der.TypeTag:             "TypeTag",
	asn1der.TypeSize:            "TypeSize",
	asn1der.TypeDefault:         "TypeDefault",
	asn1der.TypeConstant:        "TypeConstant",
	asn1der.TypeIdentifier:      "TypeIdentifier",
	asn1der.TypeDefinitions:     "TypeDefinitions",
}

// flagExpr renders flags as an expression of the asn1der Flag constants, e.g.
// "asn1der.FlagOptional | asn1der.FlagDown".  The constants are named after the flag
// names: NOT_USED is FlagNotUsed.
func flagExpr(f asn1der.Flags) string {
	if f == 0 {
		return ""
	}
	var parts []string
	for _, name := range strings.Split(f.String(), "|") {
		name = strings.ReplaceAll(strings.ToLower(name), "_", "-")
		parts = append(parts, "asn1der.Flag"+asn1util.NormalizeName(name))
	}
	return strings.Join(parts, " | ")
}

func prepareInput(defs []asn1der.Definition, pkg, varName string) (*inputs, error) {
	tree, err := asn1der.ArrayToTree(defs)
	if err != nil {
		return nil, merry.Prepend(err, "invalid definitions")
	}

	in := inputs{
		Package: pkg,
		Module:  tree.Name(),
		Var:     varName,
	}
	if in.Var == "" {
		in.Var = asn1util.NormalizeName(tree.Name()) + "Definitions"
	}

	for _, d := range defs {
		t, ok := typeNames[d.Type]
		if !ok {
			return nil, merry.Errorf("unknown type %v", d.Type)
		}
		in.Defs = append(in.Defs, defVal{
			Name:  d.Name,
			Type:  t,
			Flags: flagExpr(d.Flags),
			Value: d.Value,
		})
	}

	for name, oid := range tree.OIDs() {
		in.OIDs = append(in.OIDs, oidVal{
			Name:  asn1util.NormalizeName(name),
			ASN1:  name,
			Value: oid,
		})
	}
	sort.Slice(in.OIDs, func(i, j int) bool {
		return in.OIDs[i].ASN1 < in.OIDs[j].ASN1
	})

	return &in, nil
}

func genCode(defs []asn1der.Definition, pkg, varName string) (string, error) {
	buf := bytes.NewBuffer(nil)

	in, err := prepareInput(defs, pkg, varName)
	if err != nil {
		return "", err
	}

	tmpl := template.Must(template.New("root").Parse(global))
	err = tmpl.Execute(buf, in)
	if err != nil {
		return "", merry.Prepend(err, "executing template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// the output can still be compiled to find the problem
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		return buf.String(), nil
	}

	return string(src), nil
}

const global = `// Code generated by asn1gen; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/gemalto/asn1der"
)

// {{.Var}} is the {{.Module}} module, in the form asn1der.ArrayToTree takes.
var {{.Var}} = []asn1der.Definition{
{{range .Defs}}	{ {{- with .Name}}Name: {{printf "%q" .}}, {{end}}Type: asn1der.{{.Type}}{{with .Flags}}, Flags: {{.}}{{end}}{{with .Value}}, Value: {{printf "%q" .}}{{end}}},
{{end}}}
{{with .OIDs}}
// Object identifiers assigned in {{$.Module}}.
const (
{{range .}}	{{.Name}} = {{printf "%q" .Value}} // {{.ASN1}}
{{end}})
{{end}}`
