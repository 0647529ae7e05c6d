package main

import (
	"log/slog"
	"net/http"

	httpadapter "github.com/aretw0/figure/internal/adapters/http"
	"github.com/aretw0/figure/internal/logging"
	"github.com/aretw0/figure/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve live inspection snapshots of a document over HTTP",
	Long:  `Serve loads the given document and exposes it on a small debug endpoint: GET /vars lists exposed variables, GET /vars/{name} returns a fresh JSON snapshot, GET /metrics exposes prometheus counters.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		value, err := loadValue(path)
		if err != nil {
			return err
		}

		opts, _, name, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		if name == "" {
			name = "document"
		}

		logger := logging.New(slog.LevelInfo)

		exposer := httpadapter.NewExposer()
		exposer.ExposeWith(name, value, opts)

		addr, _ := cmd.Flags().GetString("addr")
		tui.PrintBanner()
		logger.Info("serving inspection snapshots", "addr", addr, "vars", exposer.Names())
		return http.ListenAndServe(addr, httpadapter.NewHandler(exposer, logger))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
