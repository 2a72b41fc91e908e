// Package commands implements the navctl subcommands.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serverURL    string
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navctl",
		Short: "Terminal client for the disasternav API",
		Long: `navctl talks to a running disasternav server: generate evacuation
plans, look up nearby emergency resources, preview routes, and check
provider health from the terminal.

The server address comes from --server, the DISASTERNAV_SERVER
environment variable, or defaults to http://localhost:8080.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", "", "disasternav server base URL")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(NewPlanCmd())
	cmd.AddCommand(NewResourcesCmd())
	cmd.AddCommand(NewRouteCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// resolveServer returns the server base URL from the flag, the
// environment, or the default, in that order. A .env file is honored.
func resolveServer() string {
	_ = godotenv.Load()

	if serverURL != "" {
		return serverURL
	}
	if env := os.Getenv("DISASTERNAV_SERVER"); env != "" {
		return env
	}
	return "http://localhost:8080"
}
