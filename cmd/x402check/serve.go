package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	x402http "github.com/rawgroundbeef/x402check/http"
	x402chi "github.com/rawgroundbeef/x402check/http/chi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation HTTP service",
	Long: `serve exposes POST /validate, GET /validate?url= and GET /healthz on
the given address. Validation findings always come back as a 200 with
the full result; non-2xx statuses mean the request itself failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := x402http.NewHandler(nil)
		if err != nil {
			return err
		}

		slog.Info("validation service listening", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, x402chi.Routes(handler))
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8402", "listen address")
	rootCmd.AddCommand(serveCmd)
}
