// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sankhodeep/PDF2MD/internal/extract"
)

var infoCmd = &cobra.Command{
	Use:   "info <pdf>",
	Short: "Print a PDF's page count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor := extract.NewPoppler(0)
		total, err := extractor.PageCount(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pages (1-%d)\n", args[0], total, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
