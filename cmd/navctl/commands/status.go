package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/disasternav/disasternav/internal/api/models"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server and provider health",
		Long: `Show the server's view of its upstream providers: circuit breaker
state per provider and whether advisory generation is configured.`,
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	client := newAPIClient()

	var status models.SystemStatus
	if err := client.getJSON(cmd.Context(), "/v1/status", &status); err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), status)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "System: %s\n\n", status.Status)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PROVIDER\tSTATUS\tCIRCUIT\tMESSAGE\n")
	for _, p := range status.Providers {
		circuit := p.CircuitState
		if circuit == "" {
			circuit = "-"
		}
		message := p.Message
		if message == "" {
			message = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Provider, p.Status, circuit, message)
	}
	return w.Flush()
}
