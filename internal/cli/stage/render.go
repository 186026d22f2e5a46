package stage

import (
	"fmt"

	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/cli/styles"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/services/pipeline"
	"github.com/thenoetrevino/embudo/internal/types"
)

type warningJSON struct {
	First    string `json:"first"`
	Second   string `json:"second"`
	Distance int    `json:"distance"`
}

// printStages writes a stage list in the active output mode.
// result is nil for read-only listings.
func printStages(hc *handler.Context, message string, stages []models.Stage, result *pipeline.EditResult) error {
	if hc.Out.Quiet {
		for _, st := range stages {
			fmt.Println(st.ID)
		}
		return nil
	}

	if hc.Out.JSON {
		payload := map[string]any{"stages": stages}
		if result != nil {
			warnings := make([]warningJSON, len(result.Warnings))
			for i, w := range result.Warnings {
				warnings[i] = warningJSON{First: w.First.Name, Second: w.Second.Name, Distance: w.Distance}
			}
			payload["warnings"] = warnings
			payload["orphans"] = result.Orphans
		}
		return hc.Out.Result(payload)
	}

	if message != "" {
		fmt.Println(styles.SuccessStyle.Render("✓ " + message))
	}
	for i, st := range stages {
		fmt.Printf("  %d. %s  %s  %s\n", i+1, styles.StageChip(st), styles.SubtitleStyle.Render(st.Color), styles.SubtitleStyle.Render(cli.ShortID(st.ID)))
	}

	if result == nil {
		return nil
	}
	for _, w := range result.Warnings {
		text := fmt.Sprintf("⚠ Stages %q and %q look alike; candidates are matched by exact name", w.First.Name, w.Second.Name)
		if w.Distance == 0 {
			text = fmt.Sprintf("⚠ Two stages are named %q; candidates with that stage show in the first one", w.First.Name)
		}
		fmt.Println(styles.WarningStyle.Render(text))
	}
	if n := len(result.Orphans); n > 0 {
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("⚠ %d candidate(s) no longer match a stage, see 'embudo board orphans'", n)))
	}
	return nil
}

// storedName returns the saved name of stage id, or fallback if it is gone
func storedName(stages []models.Stage, id types.StageID, fallback string) string {
	for _, st := range stages {
		if st.ID == id {
			return st.Name
		}
	}
	return fallback
}
