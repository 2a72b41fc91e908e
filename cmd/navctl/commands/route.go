package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/disasternav/disasternav/internal/api/models"
)

var (
	routeFrom string
	routeTo   string
	routeType string
)

// NewRouteCmd creates the route command.
func NewRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Preview a route between two points",
		Long: `Preview a driving route with simulated road blockages marked for
the given disaster type, without resource lookup or advisory.

Coordinates are given as "lat,lon" pairs.

Examples:
  navctl route --from 12.9716,77.5946 --to 12.98,77.60 --type Flood`,
		RunE: runRoute,
	}

	cmd.Flags().StringVar(&routeFrom, "from", "", "Origin as lat,lon (required)")
	cmd.Flags().StringVar(&routeTo, "to", "", "Destination as lat,lon (required)")
	cmd.Flags().StringVar(&routeType, "type", "Other", "Disaster type: Flood, Fire, Earthquake, Tsunami, Other")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRoute(cmd *cobra.Command, _ []string) error {
	origin, err := parsePoint(routeFrom)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	destination, err := parsePoint(routeTo)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	client := newAPIClient()

	request := models.RoutePreviewRequest{
		Origin:       origin,
		Destination:  destination,
		DisasterType: models.DisasterType(routeType),
	}

	var preview models.RoutePreviewResponse
	if err := client.postJSON(cmd.Context(), "/v1/routes:preview", request, &preview); err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), preview)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Route (%s): %s, about %s\n\n", preview.DisasterType, preview.Route.TotalDistance, preview.Route.TotalDuration)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STEP\tROAD\tDISTANCE\tSTATUS\n")
	for i, step := range preview.Route.Steps {
		status := "clear"
		if step.Blocked {
			status = "BLOCKED - " + step.Alternative
		}
		fmt.Fprintf(w, "%d. %s\t%s\t%s\t%s\n", i+1, step.Instruction, step.RoadName, step.Distance, status)
	}
	return w.Flush()
}

// parsePoint parses a "lat,lon" pair.
func parsePoint(s string) (*models.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q is not a number", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q is not a number", parts[1])
	}
	return &models.Point{Lat: lat, Lon: lon}, nil
}
