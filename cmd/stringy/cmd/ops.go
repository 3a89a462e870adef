package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/spf13/cobra"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

// opsStyles renders the operation listing for one output
type opsStyles struct {
	title    lipgloss.Style
	category lipgloss.Style
	name     lipgloss.Style
	usage    lipgloss.Style
	summary  lipgloss.Style
}

func newOpsStyles(r *lipgloss.Renderer) opsStyles {
	return opsStyles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),
		category: r.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		name: r.NewStyle().
			PaddingLeft(2),
		usage: r.NewStyle().
			Foreground(colorMuted),
		summary: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops [category]",
		Short: "Lists the available operations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := categories()
			names := sortedCategories(groups)
			if len(args) == 1 {
				if _, ok := groups[args[0]]; !ok {
					return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "ops", args[0],
						"one of "+strings.Join(names, ", "))
				}
				names = []string{args[0]}
			}

			styles := newOpsStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
			fmt.Fprintln(cmd.OutOrStdout(), renderOps(styles, groups, names))
			return nil
		},
	}
}

func renderOps(styles opsStyles, groups map[string][]*Operation, names []string) string {
	var b strings.Builder

	total := 0
	for _, name := range names {
		total += len(groups[name])
	}
	b.WriteString(styles.title.Render(fmt.Sprintf("Operations (%d)", total)))
	b.WriteString("\n")

	width := 0
	for _, name := range names {
		for _, op := range groups[name] {
			width = max(width, len(op.Name)+len(op.Usage)+1)
		}
	}

	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.category.Render(name))
		b.WriteString("\n")
		for _, op := range groups[name] {
			signature := op.Name
			if op.Usage != "" {
				signature += " " + styles.usage.Render(op.Usage)
			}
			pad := strings.Repeat(" ", width-len(op.Name)-len(op.Usage)+2)
			b.WriteString(styles.name.Render(signature))
			b.WriteString(pad)
			b.WriteString(styles.summary.Render(op.Summary))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
