package main

import (
	"fmt"
	"github.com/gemalto/asn1der"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [input]",
	Short: "Decode an encoding against a type, and print the value tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := input(cmd, args)
		if err != nil {
			return err
		}
		defs, err := loadDefinitions()
		if err != nil {
			return err
		}
		n, err := asn1der.Decode(defs, opts.typeName, b)
		if err != nil {
			if el := asn1der.ErrorElement(err); el != "" {
				return fmt.Errorf("decoding %s: at %s: %w", opts.typeName, el, err)
			}
			return fmt.Errorf("decoding %s: %w", opts.typeName, err)
		}
		if err := asn1der.Print(cmd.OutOrStdout(), "", n); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	addTypeFlags(decodeCmd)
}
