// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2md CLI, which converts
// page ranges of PDF documents into Markdown through the Gemini API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf2md CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2md",
	Short: "Convert PDF pages to Markdown with Gemini",
	Long: `pdf2md renders each page of a PDF page range to an image, sends it to the
Gemini multimodal API with a fixed conversion instruction, and writes the
returned Markdown to a single output file.

Saved input/output path pairs are managed with the configs subcommand, and
finished runs are recorded in a local history database.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2md.yaml or ~/.config/pdf2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2md"))
		}
	}

	viper.SetDefault("ai.model", "gemini-2.5-pro")
	viper.SetDefault("render.dpi", 200)
	viper.SetDefault("worker.preview_width", 80)
	viper.SetDefault("configs_path", "pdf2md-configs.yaml")
	viper.SetDefault("history_dir", ".pdf2md")
	viper.SetDefault("secrets_dir", ".secrets")

	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
