package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/handlers/trainer/v1alpha1"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
)

var planCmd = &cobra.Command{
	Use:   "plan [start] [goal]",
	Short: "Ask the server for a training route",
	Long: `Plan a route on the server. Levels are attack,strength,defence. Example:

  plan 40,40,40 70,70,70`,
	Args: cobra.ExactArgs(2),
	RunE: plan,
}

func plan(cmd *cobra.Command, args []string) error {
	start, err := osrs.ParseLevels(args[0])
	if err != nil {
		return err
	}
	goal, err := osrs.ParseLevels(args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createTrainingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PlanTraining(ctx, v1alpha1.EncodePlanTrainingRequest(start, goal))
	if err != nil {
		converted := errors.FromGRPCError(err)
		if meta := errors.GetMeta(converted); len(meta) > 0 {
			return fmt.Errorf("failed to plan training: %w %v", converted, meta)
		}
		return fmt.Errorf("failed to plan training: %w", converted)
	}

	result, err := v1alpha1.DecodePlan(resp)
	if err != nil {
		return err
	}

	fmt.Printf("plan %s (%d states expanded)\n", result.ID, result.Expanded)
	return training.WriteReport(os.Stdout, result)
}
