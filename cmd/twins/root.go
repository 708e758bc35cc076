package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"birthday-twins/config"
	"birthday-twins/internal/app"
	"birthday-twins/internal/logger"
)

type pipelineFactory func(ctx context.Context, cfg config.AppConfig) (*app.Pipeline, error)

type rootOptions struct {
	logLevel string
	jsonOut  bool
}

// newRootCmd 는 twins CLI 의 루트 명령이다. 파이프라인 생성 함수는 테스트에서 주입한다.
func newRootCmd(newPipeline pipelineFactory) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "twins",
		Short: "Find famous people who share a birthday",
		Long: `twins looks up five famous people born on a given month and day,
resolves a photo for each of them and can render the birthday card offline.

Examples:
  twins lookup --date 07-04
  twins lookup --date 2024-02-29 --no-images --json
  twins resolve-image --name "Louis Armstrong"
  twins card --date 07-04 --friend Sam --select "Louis Armstrong" --out card.html`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitApp()
			// 결과는 stdout, 로그는 stderr
			if opts.logLevel != "" {
				logger.Log = logger.NewLogger(opts.logLevel, cmd.ErrOrStderr())
				return
			}
			logger.InitTo(cmd.ErrOrStderr(), config.GetConfig().Logging.Level)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print machine-readable JSON")

	load := func(cmd *cobra.Command) (*app.Pipeline, error) {
		return newPipeline(cmd.Context(), config.GetConfig())
	}

	root.AddCommand(
		newLookupCmd(opts, load),
		newResolveImageCmd(opts, load),
		newCardCmd(load),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
