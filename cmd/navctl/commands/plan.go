package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/disasternav/disasternav/internal/api/models"
)

var (
	planLat      float64
	planLon      float64
	planType     string
	planRadius   int
	planCategory string
)

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <description>",
		Short: "Generate an evacuation plan",
		Long: `Generate a full evacuation plan: find the nearest emergency
resources, route to the closest one with simulated road blockages
marked, and include an AI safety advisory.

Examples:
  navctl plan "water is rising in my street" --lat 12.9716 --lon 77.5946 --type Flood
  navctl plan "building collapsed nearby" --lat 12.97 --lon 77.59 --type Earthquake --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runPlan,
	}

	cmd.Flags().Float64Var(&planLat, "lat", 0, "Origin latitude (required)")
	cmd.Flags().Float64Var(&planLon, "lon", 0, "Origin longitude (required)")
	cmd.Flags().StringVar(&planType, "type", "Other", "Disaster type: Flood, Fire, Earthquake, Tsunami, Other")
	cmd.Flags().IntVar(&planRadius, "radius", 0, "Resource search radius in meters (default 5000)")
	cmd.Flags().StringVar(&planCategory, "category", "", "Resource category (default assembly_point)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	client := newAPIClient()

	request := models.PlanRequest{
		Description:  args[0],
		DisasterType: models.DisasterType(planType),
		Origin:       &models.Point{Lat: planLat, Lon: planLon},
		RadiusMeters: planRadius,
		Category:     planCategory,
	}

	var plan models.PlanResponse
	if err := client.postJSON(cmd.Context(), "/v1/plans:generate", request, &plan); err != nil {
		return err
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), plan)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Evacuation plan %s (%s)\n\n", plan.ID, plan.DisasterType)
	fmt.Fprintf(out, "Destination: %s (%.0f m away)\n", plan.Destination.Name, plan.Destination.DistanceMeters)
	fmt.Fprintf(out, "Route: %s, about %s\n\n", plan.Route.TotalDistance, plan.Route.TotalDuration)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STEP\tROAD\tDISTANCE\tSTATUS\n")
	for i, step := range plan.Route.Steps {
		status := "clear"
		if step.Blocked {
			status = "BLOCKED - " + step.Alternative
		}
		fmt.Fprintf(w, "%d. %s\t%s\t%s\t%s\n", i+1, step.Instruction, step.RoadName, step.Distance, status)
	}
	w.Flush()

	if plan.Advisory.Text != "" {
		fmt.Fprintf(out, "\nSafety advisory:\n%s\n", plan.Advisory.Text)
	}
	return nil
}
