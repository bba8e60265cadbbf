package v1alpha1

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
)

// Request:
//
//	{"start": {"attack": 40, "strength": 40, "defence": 40},
//	 "goal":  {"attack": 70, "strength": 70, "defence": 70}}
//
// Response:
//
//	{"plan": {"id", "start", "goal", "reachable", "total_hours", "expanded",
//	          "created_at", "steps": [{"from", "to", "style", "skill", "hours",
//	          "gear": [{"slot", "name", "item_ids", "offense", "strength",
//	                    "cadence", "damage", "style"}]}]}}

// EncodePlanTrainingRequest builds a PlanTraining request
func EncodePlanTrainingRequest(start, goal osrs.Levels) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"start": structpb.NewStructValue(encodeLevels(start)),
		"goal":  structpb.NewStructValue(encodeLevels(goal)),
	}}
}

// DecodePlanTrainingRequest reads a PlanTraining request
func DecodePlanTrainingRequest(req *structpb.Struct) (*training.PlanTrainingInput, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	vb := errors.NewValidationBuilder()
	start := decodeLevels(req, "start", vb)
	goal := decodeLevels(req, "goal", vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &training.PlanTrainingInput{Start: start, Goal: goal}, nil
}

// EncodePlan builds a PlanTraining response
func EncodePlan(plan *training.Plan) (*structpb.Struct, error) {
	if plan == nil {
		return nil, errors.Internal("plan is required")
	}

	steps := make([]interface{}, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		gear := make([]interface{}, 0, len(step.Gear))
		for _, piece := range step.Gear {
			ids := make([]interface{}, 0, len(piece.Group.ItemIDs))
			for _, id := range piece.Group.ItemIDs {
				ids = append(ids, id)
			}
			gear = append(gear, map[string]interface{}{
				"slot":     string(piece.Slot),
				"name":     piece.Name,
				"item_ids": ids,
				"offense":  piece.Group.Offense,
				"strength": piece.Group.Strength,
				"cadence":  piece.Group.Cadence,
				"damage":   string(piece.Group.DamageType),
				"style":    string(piece.Group.Style),
			})
		}

		steps = append(steps, map[string]interface{}{
			"from":  levelsMap(step.From),
			"to":    levelsMap(step.To),
			"style": string(step.Style),
			"skill": string(step.Skill),
			"hours": step.Hours,
			"gear":  gear,
		})
	}

	body, err := structpb.NewStruct(map[string]interface{}{
		"id":          plan.ID,
		"start":       levelsMap(plan.Start),
		"goal":        levelsMap(plan.Goal),
		"reachable":   plan.Reachable,
		"total_hours": plan.TotalHours,
		"expanded":    plan.Expanded,
		"created_at":  plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		"steps":       steps,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode plan")
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"plan": structpb.NewStructValue(body),
	}}, nil
}

// DecodePlan reads a PlanTraining response back into a plan
func DecodePlan(resp *structpb.Struct) (*training.Plan, error) {
	body := resp.GetFields()["plan"].GetStructValue()
	if body == nil {
		return nil, errors.DataLossf("response has no plan")
	}
	f := body.GetFields()

	plan := &training.Plan{
		ID:         f["id"].GetStringValue(),
		Start:      levelsFrom(f["start"].GetStructValue()),
		Goal:       levelsFrom(f["goal"].GetStructValue()),
		Reachable:  f["reachable"].GetBoolValue(),
		TotalHours: f["total_hours"].GetNumberValue(),
		Expanded:   int(f["expanded"].GetNumberValue()),
	}
	if raw := f["created_at"].GetStringValue(); raw != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid created_at")
		}
		plan.CreatedAt = createdAt
	}

	for _, sv := range f["steps"].GetListValue().GetValues() {
		s := sv.GetStructValue().GetFields()
		step := training.Step{
			From:  levelsFrom(s["from"].GetStructValue()),
			To:    levelsFrom(s["to"].GetStructValue()),
			Style: osrs.Style(s["style"].GetStringValue()),
			Skill: osrs.Skill(s["skill"].GetStringValue()),
			Hours: s["hours"].GetNumberValue(),
		}
		for _, gv := range s["gear"].GetListValue().GetValues() {
			g := gv.GetStructValue().GetFields()
			slot := osrs.Slot(g["slot"].GetStringValue())

			group := osrs.ItemGroup{
				Slot:     slot,
				Offense:  int(g["offense"].GetNumberValue()),
				Strength: int(g["strength"].GetNumberValue()),
				Cadence:  int(g["cadence"].GetNumberValue()),

				DamageType: osrs.DamageType(g["damage"].GetStringValue()),
				Style:      osrs.Style(g["style"].GetStringValue()),
			}
			for _, id := range g["item_ids"].GetListValue().GetValues() {
				group.ItemIDs = append(group.ItemIDs, int(id.GetNumberValue()))
			}

			step.Gear = append(step.Gear, training.GearPiece{
				Slot:  slot,
				Group: group,
				Name:  g["name"].GetStringValue(),
			})
		}
		plan.Steps = append(plan.Steps, step)
	}

	return plan, nil
}

func levelsMap(l osrs.Levels) map[string]interface{} {
	return map[string]interface{}{
		"attack":   l.Attack,
		"strength": l.Strength,
		"defence":  l.Defence,
	}
}

func encodeLevels(l osrs.Levels) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"attack":   structpb.NewNumberValue(float64(l.Attack)),
		"strength": structpb.NewNumberValue(float64(l.Strength)),
		"defence":  structpb.NewNumberValue(float64(l.Defence)),
	}}
}

func levelsFrom(s *structpb.Struct) osrs.Levels {
	f := s.GetFields()
	return osrs.Levels{
		Attack:   int(f["attack"].GetNumberValue()),
		Strength: int(f["strength"].GetNumberValue()),
		Defence:  int(f["defence"].GetNumberValue()),
	}
}

func decodeLevels(req *structpb.Struct, field string, vb *errors.ValidationBuilder) osrs.Levels {
	value, ok := req.GetFields()[field]
	if !ok {
		vb.RequiredField(field)
		return osrs.Levels{}
	}
	s := value.GetStructValue()
	if s == nil {
		vb.InvalidField(field, "must be an object")
		return osrs.Levels{}
	}

	return osrs.Levels{
		Attack:   levelField(s, field, "attack", vb),
		Strength: levelField(s, field, "strength", vb),
		Defence:  levelField(s, field, "defence", vb),
	}
}

func levelField(s *structpb.Struct, parent, name string, vb *errors.ValidationBuilder) int {
	path := parent + "." + name

	value, ok := s.GetFields()[name]
	if !ok {
		vb.RequiredField(path)
		return 0
	}
	n, isNumber := value.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		vb.InvalidField(path, "must be an integer")
		return 0
	}
	return int(n.NumberValue)
}
