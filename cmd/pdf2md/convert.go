// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sankhodeep/PDF2MD/internal/ai"
	"github.com/sankhodeep/PDF2MD/internal/configstore"
	"github.com/sankhodeep/PDF2MD/internal/controller"
	"github.com/sankhodeep/PDF2MD/internal/extract"
	"github.com/sankhodeep/PDF2MD/internal/history"
	"github.com/sankhodeep/PDF2MD/internal/secrets"
	"github.com/sankhodeep/PDF2MD/internal/worker"
	"github.com/sankhodeep/PDF2MD/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdf]",
	Short: "Convert a page range of a PDF to Markdown",
	Long: `Convert renders each page in the range to an image, sends it to Gemini,
and writes the successful pages, in page order, to the output file. A page
that fails is reported and skipped; the run continues with the next page.

Interrupt with Ctrl-C to cancel: the page in flight finishes, no further
pages start, and the pages converted so far are still written out.

The PDF path and output path can come from a saved configuration
(--name) instead of the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetInt("start")
		end, _ := cmd.Flags().GetInt("end")
		out, _ := cmd.Flags().GetString("out")
		headings, _ := cmd.Flags().GetBool("page-headings")
		name, _ := cmd.Flags().GetString("name")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		req := types.ConversionRequest{
			StartPage:    start,
			EndPage:      end,
			OutputPath:   out,
			PageHeadings: headings,
		}
		if len(args) == 1 {
			req.InputPath = args[0]
		}

		cfg := types.Config{
			AI:          types.AIConfig{Model: viper.GetString("ai.model")},
			Render:      types.RenderConfig{DPI: viper.GetInt("render.dpi")},
			Worker:      types.WorkerConfig{PreviewWidth: viper.GetInt("worker.preview_width")},
			ConfigsPath: viper.GetString("configs_path"),
			HistoryDir:  viper.GetString("history_dir"),
			SecretsDir:  viper.GetString("secrets_dir"),
		}

		if name != "" {
			store := configstore.New(cfg.ConfigsPath)
			configs, err := store.Load()
			if err != nil {
				return err
			}
			saved, ok := configs[name]
			if !ok {
				return fmt.Errorf("no saved configuration named %q", name)
			}
			if req.InputPath == "" {
				req.InputPath = saved.InputPath
			}
			if req.OutputPath == "" {
				req.OutputPath = saved.OutputPath
			}
		}
		if req.InputPath == "" {
			return fmt.Errorf("no input PDF: pass a path or use --name")
		}
		if req.OutputPath == "" {
			return fmt.Errorf("no output path: pass --out or use --name")
		}

		// The API key is checked before any page work starts.
		apiKey, err := secrets.APIKey(cfg.SecretsDir)
		if err != nil {
			return err
		}

		converter, err := ai.NewGemini(cmd.Context(), apiKey, cfg.AI.Model)
		if err != nil {
			return err
		}
		extractor := extract.NewPoppler(cfg.Render.DPI)
		w := worker.New(extractor, converter,
			worker.WithPreviewWidth(cfg.Worker.PreviewWidth))

		var hist *history.Store
		if !noHistory {
			hist, err = history.Open(cfg.HistoryDir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: run history disabled: %v\n", err)
			} else {
				defer hist.Close()
			}
		}

		ctrl := controller.New(w, hist, cmd.OutOrStdout())
		ctrl.ShowBar, _ = cmd.Flags().GetBool("progress")

		// Ctrl-C cancels cooperatively: the in-flight page finishes and
		// the partial output is still flushed.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			ctrl.Cancel()
		}()

		phase, err := ctrl.Run(ctx, req)
		if err != nil {
			return err
		}
		if phase == types.PhaseCancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Conversion cancelled.")
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().IntP("start", "s", 1, "first page of the range (1-based, inclusive)")
	convertCmd.Flags().IntP("end", "e", 1, "last page of the range (1-based, inclusive)")
	convertCmd.Flags().StringP("out", "o", "", "output Markdown file")
	convertCmd.Flags().Bool("page-headings", false, "insert a '--- Page N ---' heading before each page")
	convertCmd.Flags().StringP("name", "n", "", "saved configuration to take paths from")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
	convertCmd.Flags().Bool("progress", false, "render a progress bar alongside per-page status lines")

	rootCmd.AddCommand(convertCmd)
}
