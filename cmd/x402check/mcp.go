package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	x402mcp "github.com/rawgroundbeef/x402check/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server with the validation tools",
	Long: `mcp serves the x402_validate, x402_detect and x402_normalize tools
over stdio, or over streamable HTTP when --http is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := x402mcp.NewServer()

		if mcpHTTPAddr != "" {
			slog.Info("mcp server listening", "addr", mcpHTTPAddr)
			return http.ListenAndServe(mcpHTTPAddr, server.Handler())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.ServeStdio(ctx)
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve MCP over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}
