package training

import (
	"time"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
)

// PlanType is the entity type of a training plan
const PlanType = "training_plan"

// PlanTrainingInput defines the request for planning a route
type PlanTrainingInput struct {
	Start osrs.Levels
	Goal  osrs.Levels
}

// PlanTrainingOutput defines the response for planning a route
type PlanTrainingOutput struct {
	Plan *Plan
}

// GearPiece is the group worn in one slot during a step
type GearPiece struct {
	Slot  osrs.Slot
	Group osrs.ItemGroup
	Name  string
}

// Step is one level gained
type Step struct {
	From  osrs.Levels
	To    osrs.Levels
	Style osrs.Style
	Skill osrs.Skill
	Hours float64
	Gear  []GearPiece
}

// Plan is the fastest route between two level triples
type Plan struct {
	ID         string
	Start      osrs.Levels
	Goal       osrs.Levels
	Reachable  bool
	TotalHours float64
	Steps      []Step
	Expanded   int
	CreatedAt  time.Time
}

// GetID returns the plan id
func (p *Plan) GetID() string {
	return p.ID
}

// GetType returns the entity type
func (p *Plan) GetType() string {
	return PlanType
}
