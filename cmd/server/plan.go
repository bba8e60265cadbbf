package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
)

var (
	planStart   string
	planGoal    string
	planRefresh bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a training route locally",
	Long: `Load the item catalog and print the fastest route from the start levels
to the goal levels. Levels are given as attack,strength,defence.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planStart, "start", "40,40,40", "starting attack,strength,defence")
	planCmd.Flags().StringVar(&planGoal, "goal", "70,70,70", "goal attack,strength,defence")
	planCmd.Flags().BoolVar(&planRefresh, "refresh", false, "ignore cached catalog documents")
}

func runPlan(cmd *cobra.Command, args []string) error {
	start, err := osrs.ParseLevels(planStart)
	if err != nil {
		return err
	}
	goal, err := osrs.ParseLevels(planGoal)
	if err != nil {
		return err
	}

	cfg, logCloser, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loader, closer, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	fmt.Println("building gear cache")
	trainer, err := buildTrainer(ctx, cfg, loader, planRefresh)
	if err != nil {
		return err
	}
	fmt.Println("done")

	out, err := trainer.PlanTraining(ctx, &training.PlanTrainingInput{Start: start, Goal: goal})
	if err != nil {
		return fmt.Errorf("failed to plan training: %w", err)
	}

	return training.WriteReport(os.Stdout, out.Plan)
}
