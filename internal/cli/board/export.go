package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/cli/handler"
	"github.com/thenoetrevino/embudo/internal/models"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a vacancy board as markdown",
		Long: `Export a vacancy board as a markdown report: one section per stage with a
table of its candidates.

Examples:
  embudo board export --vacancy=1             # rendered for the terminal
  embudo board export --vacancy=1 --raw > board.md
`,
		RunE: handler.Command(runExport),
	}
	cli.AddVacancyFlag(cmd)
	cmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	cmd.Flags().String("style", "auto", "Glamour style: auto, dark, light, notty")
	cmd.Flags().Int("width", 100, "Word wrap width of the rendered output")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runExport(hc *handler.Context) error {
	vacancyID, err := hc.VacancyID()
	if err != nil {
		return err
	}
	v, err := hc.CLI.App.VacancyService.GetVacancy(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}
	b, err := hc.CLI.App.PipelineService.LoadBoard(hc.Ctx, vacancyID)
	if err != nil {
		return err
	}

	columns := make([]Column, 0, len(b.Stages()))
	for _, bucket := range b.Buckets() {
		columns = append(columns, Column{Stage: bucket.Stage, Items: bucket.Items})
	}
	md := Markdown(v, columns, b.Orphans(), time.Now())

	if hc.Out.JSON {
		return hc.Out.Result(map[string]any{
			"markdown": md,
		})
	}

	raw, _ := hc.Cmd.Flags().GetBool("raw")
	if raw || hc.Out.Quiet {
		fmt.Print(md)
		return nil
	}

	width, _ := hc.Cmd.Flags().GetInt("width")
	out, err := Render(md, hc.String("style"), width)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// Column is one stage of an exported board
type Column struct {
	Stage models.Stage
	Items []models.BoardItem
}

// Markdown renders a board as a markdown document
func Markdown(v *models.Vacancy, columns []Column, orphans []models.BoardItem, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", v.Title)
	if v.Company != "" {
		fmt.Fprintf(&sb, "**%s**, ", v.Company)
	}
	total := len(orphans)
	for _, c := range columns {
		total += len(c.Items)
	}
	fmt.Fprintf(&sb, "%d candidates across %d stages.\n\n", total, len(columns))

	for _, c := range columns {
		fmt.Fprintf(&sb, "## %s (%d)\n\n", c.Stage.Name, len(c.Items))
		writeTable(&sb, c.Items, now)
	}

	if len(orphans) > 0 {
		fmt.Fprintf(&sb, "## Without stage (%d)\n\n", len(orphans))
		writeTable(&sb, orphans, now)
	}
	return sb.String()
}

func writeTable(sb *strings.Builder, items []models.BoardItem, now time.Time) {
	if len(items) == 0 {
		sb.WriteString("_No candidates._\n\n")
		return
	}
	sb.WriteString("| ID | Candidate | Role | Source | Applied |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, it := range items {
		fmt.Fprintf(sb, "| %d | %s | %s | %s | %s |\n",
			it.ID, cell(it.DisplayName), cell(it.RoleLabel), cell(it.Source), humanize.RelTime(it.AppliedAt, now, "ago", "from now"))
	}
	sb.WriteString("\n")
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// Render formats markdown for the terminal with glamour
func Render(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
