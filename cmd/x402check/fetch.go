package main

import (
	"github.com/spf13/cobra"

	"github.com/rawgroundbeef/x402check/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch URL",
	Short: "Fetch a remote payment configuration and validate it",
	Long: `fetch retrieves the document behind URL, treating both 200 and 402
responses as configuration carriers, and validates what came back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := fetch.NewClient()
		if err != nil {
			return err
		}

		result, err := client.FetchAndValidate(cmd.Context(), args[0], validateOptions()...)
		if err != nil {
			return err
		}
		return report(cmd.OutOrStdout(), result)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
