package main

import (
	"fmt"
	"github.com/gemalto/asn1der"
	"github.com/spf13/cobra"
)

var spanCmd = &cobra.Command{
	Use:   "span [input]",
	Short: "Print the offsets of an element's encoding in the input",
	Long: `span prints the start and end offsets of the encoding of the element at a path,
end exclusive, followed by the encoding in hex.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := input(cmd, args)
		if err != nil {
			return err
		}
		defs, err := loadDefinitions()
		if err != nil {
			return err
		}
		n, err := defs.CreateElement(opts.typeName)
		if err != nil {
			return err
		}
		start, end, err := asn1der.DecodeDERStartEnd(n, b, spanPath)
		if err != nil {
			return fmt.Errorf("locating %s: %w", spanPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d %x\n", start, end, b[start:end])
		return nil
	},
}

var spanPath string

func init() {
	addTypeFlags(spanCmd)
	spanCmd.Flags().StringVarP(&spanPath, "path", "p", "", "dotted path of the element, e.g. tbsCertificate.subject")
}
