// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sankhodeep/PDF2MD/internal/configstore"
	"github.com/sankhodeep/PDF2MD/pkg/types"
)

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "Manage saved input/output path pairs",
	Long: `Configs manages named {PDF path, output path} pairs so frequent
conversions don't need their paths retyped. The collection is stored in a
small YAML file and loaded back by 'convert --name'.`,
}

var configsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := configstore.New(viper.GetString("configs_path"))
		configs, err := store.Load()
		if err != nil {
			return err
		}
		if len(configs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved configurations.")
			return nil
		}

		names := make([]string, 0, len(configs))
		for name := range configs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			c := configs[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n  pdf: %s\n  out: %s\n", name, c.InputPath, c.OutputPath)
		}
		return nil
	},
}

var configsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save or replace a named configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath, _ := cmd.Flags().GetString("pdf")
		outPath, _ := cmd.Flags().GetString("out")

		store := configstore.New(viper.GetString("configs_path"))
		cfg := types.NamedConfig{InputPath: pdfPath, OutputPath: outPath}
		if err := store.Save(args[0], cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration %q.\n", args[0])
		return nil
	},
}

var configsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a named configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := configstore.New(viper.GetString("configs_path"))
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted configuration %q.\n", args[0])
		return nil
	},
}

func init() {
	configsSaveCmd.Flags().String("pdf", "", "input PDF path")
	configsSaveCmd.Flags().String("out", "", "output Markdown path")
	configsSaveCmd.MarkFlagRequired("pdf")
	configsSaveCmd.MarkFlagRequired("out")

	configsCmd.AddCommand(configsListCmd, configsSaveCmd, configsDeleteCmd)
	rootCmd.AddCommand(configsCmd)
}
