package training

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the plan one level at a time with the gear worn for it
func WriteReport(w io.Writer, plan *Plan) error {
	var b strings.Builder

	if !plan.Reachable {
		fmt.Fprintf(&b, "no route from %s to %s\n", plan.Start, plan.Goal)
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, step := range plan.Steps {
		fmt.Fprintf(&b, "train from %s to %s wearing:\n", step.From, step.To)
		for _, piece := range step.Gear {
			fmt.Fprintf(&b, "\t%s\n", piece.Name)
		}
	}
	fmt.Fprintf(&b, "total time: %g hours\n", plan.TotalHours)

	_, err := io.WriteString(w, b.String())
	return err
}
