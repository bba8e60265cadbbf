// Package training plans the fastest melee training route between two level
// triples, choosing the best gear for every level gained.
package training

//go:generate mockgen -destination=mock/mock_service.go -package=trainingmock github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training Service,GearSource

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-trainer/internal/engine/combat"
	"github.com/KirkDiggler/rpg-trainer/internal/engine/xptable"
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-trainer/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-trainer/internal/search"
)

// Service defines the interface for training route planning
type Service interface {
	PlanTraining(ctx context.Context, input *PlanTrainingInput) (*PlanTrainingOutput, error)
}

// Config holds the dependencies for the training orchestrator
type Config struct {
	Gear     GearSource
	XPTable  *xptable.Table
	Opponent combat.Opponent
	// MaxExpansions bounds the search, 0 means unlimited
	MaxExpansions int
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Gear == nil {
		vb.RequiredField("Gear")
	}
	if c.XPTable == nil {
		vb.RequiredField("XPTable")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Opponent.DefenceLevel < 1 {
		vb.InvalidField("Opponent.DefenceLevel", "must be at least 1")
	}
	if c.Opponent.DefenceBonus < -64 {
		vb.InvalidField("Opponent.DefenceBonus", "must be at least -64")
	}
	if c.MaxExpansions < 0 {
		vb.InvalidField("MaxExpansions", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	gear          GearSource
	xpTable       *xptable.Table
	opponent      combat.Opponent
	maxExpansions int
	idGen         idgen.Generator
	clock         clock.Clock
}

var _ core.Entity = (*Plan)(nil)

// NewOrchestrator creates a new training orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gear:          cfg.Gear,
		xpTable:       cfg.XPTable,
		opponent:      cfg.Opponent,
		maxExpansions: cfg.MaxExpansions,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
	}, nil
}

// PlanTraining searches the cheapest route from input.Start to input.Goal.
// An unreachable goal yields a plan with Reachable false.
func (o *orchestrator) PlanTraining(ctx context.Context, input *PlanTrainingInput) (*PlanTrainingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	o.validateLevels("Start", input.Start, vb)
	o.validateLevels("Goal", input.Goal, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slog.Info("Planning training route",
		"start", input.Start.String(),
		"goal", input.Goal.String())

	generator := NewGenerator(o.gear, o.xpTable, o.opponent, input.Goal)
	problem := search.Problem[osrs.LevelState, osrs.Levels]{
		Start:      osrs.LevelState{Levels: input.Start},
		Key:        osrs.LevelState.Key,
		IsGoal:     func(s osrs.LevelState) bool { return s.Levels == input.Goal },
		Successors: generator.Successors,
	}

	var opts []search.Option
	if o.maxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(o.maxExpansions))
	}

	result, err := search.ShortestPath(ctx, problem, opts...)
	if err != nil {
		return nil, o.searchError(err, input)
	}

	plan := &Plan{
		ID:        o.idGen.Generate(),
		Start:     input.Start,
		Goal:      input.Goal,
		Reachable: result.Found,
		Expanded:  result.Expanded,
		CreatedAt: o.clock.Now(),
	}

	if !result.Found {
		slog.Warn("Training goal is unreachable",
			"start", input.Start.String(),
			"goal", input.Goal.String(),
			"expanded", result.Expanded)
		return &PlanTrainingOutput{Plan: plan}, nil
	}

	plan.TotalHours = result.Cost
	plan.Steps = o.buildSteps(result.Path)

	slog.Info("Planned training route",
		"plan_id", plan.ID,
		"steps", len(plan.Steps),
		"total_hours", plan.TotalHours,
		"expanded", result.Expanded)

	return &PlanTrainingOutput{Plan: plan}, nil
}

func (o *orchestrator) validateLevels(field string, levels osrs.Levels, vb *errors.ValidationBuilder) {
	levelCap := o.xpTable.Cap()
	errors.ValidateRange(field+".Attack", levels.Attack, 1, levelCap, vb)
	errors.ValidateRange(field+".Strength", levels.Strength, 1, levelCap, vb)
	errors.ValidateRange(field+".Defence", levels.Defence, 1, levelCap, vb)
}

func (o *orchestrator) searchError(err error, input *PlanTrainingInput) error {
	switch {
	case errors.Is(err, search.ErrBudgetExceeded):
		return errors.WrapWithCode(err, errors.CodeResourceExhausted, "training search exceeded its expansion budget").
			WithMeta("max_expansions", o.maxExpansions)
	case errors.Is(err, context.Canceled):
		return errors.WrapWithCode(err, errors.CodeCanceled, "training search canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "training search timed out")
	}

	slog.Error("Training search failed",
		"start", input.Start.String(),
		"goal", input.Goal.String(),
		"error", err)
	return errors.Wrap(err, "failed to plan training route")
}

func (o *orchestrator) buildSteps(path []osrs.LevelState) []Step {
	if len(path) < 2 {
		return nil
	}

	steps := make([]Step, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		state := path[i]
		skill, _ := state.Style.TrainedSkill()

		gear := make([]GearPiece, 0, len(state.Gear))
		for _, group := range state.Gear {
			gear = append(gear, GearPiece{
				Slot:  group.Slot,
				Group: group,
				Name:  o.gear.GroupName(group),
			})
		}

		steps = append(steps, Step{
			From:  path[i-1].Levels,
			To:    state.Levels,
			Style: state.Style,
			Skill: skill,
			Hours: state.Hours,
			Gear:  gear,
		})
	}
	return steps
}
