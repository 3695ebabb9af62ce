package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "estate-admin",
	Short: "Admin console for the real-estate API",
	Long: `estate-admin serves the administrator console: sign in, builders,
properties and scheduled visits, all backed by the remote real-estate API.

Configuration is read from config.yaml and ESTATE_ADMIN_* variables.
Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
