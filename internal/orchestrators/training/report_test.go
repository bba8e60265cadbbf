package training_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/orchestrators/training"
)

func TestWriteReport(t *testing.T) {
	start := osrs.Levels{Attack: 1, Strength: 1, Defence: 1}
	mid := osrs.Levels{Attack: 2, Strength: 1, Defence: 1}
	goal := osrs.Levels{Attack: 2, Strength: 2, Defence: 1}

	plan := &training.Plan{
		Start:      start,
		Goal:       goal,
		Reachable:  true,
		TotalHours: 1.5,
		Steps: []training.Step{
			{From: start, To: mid, Gear: []training.GearPiece{{Name: "Bronze sword-like group"}, {Name: "Nothing"}}},
			{From: mid, To: goal, Gear: []training.GearPiece{{Name: "Iron sword-like group"}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, training.WriteReport(&buf, plan))
	assert.Equal(t, "train from (1, 1, 1) to (2, 1, 1) wearing:\n"+
		"\tBronze sword-like group\n"+
		"\tNothing\n"+
		"train from (2, 1, 1) to (2, 2, 1) wearing:\n"+
		"\tIron sword-like group\n"+
		"total time: 1.5 hours\n", buf.String())
}

func TestWriteReportUnreachable(t *testing.T) {
	plan := &training.Plan{
		Start: osrs.Levels{Attack: 5, Strength: 1, Defence: 1},
		Goal:  osrs.Levels{Attack: 3, Strength: 1, Defence: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, training.WriteReport(&buf, plan))
	assert.Equal(t, "no route from (5, 1, 1) to (3, 1, 1)\n", buf.String())
}
