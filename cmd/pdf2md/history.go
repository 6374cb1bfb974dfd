// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sankhodeep/PDF2MD/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(viper.GetString("history_dir"))
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
			return nil
		}

		for _, rec := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  %s pages %d-%d  %s  (%d ok, %d failed)\n",
				rec.ID,
				rec.FinishedAt.Local().Format(time.DateTime),
				rec.InputPath,
				rec.StartPage,
				rec.EndPage,
				rec.Status,
				rec.PagesOK,
				rec.PagesFailed,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 for all)")

	rootCmd.AddCommand(historyCmd)
}
