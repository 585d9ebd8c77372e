package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxSummaryRows caps the table height; older rounds scroll out of view.
const maxSummaryRows = 20

var summaryTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// RenderSummary renders the rounds of the session as a table.
// The latest rounds are shown when there are more than fit.
func RenderSummary(rounds []storage.Round, stats storage.SessionStats) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("SESSION SUMMARY"))
	b.WriteString("\n")

	if len(rounds) == 0 {
		b.WriteString("No finished rounds.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Rounds: %d  Best: %d  Average: %.1f\n\n",
		stats.Rounds, stats.Best, stats.AvgScore))

	t := table.New(
		table.WithColumns(summaryColumns()),
		table.WithRows(summaryRows(rounds)),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	// Header plus its bottom border take two lines.
	t.SetHeight(min(len(rounds), maxSummaryRows) + 2)
	t.GotoBottom()

	b.WriteString(t.View())
	b.WriteString("\n")
	return b.String()
}

func summaryColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Time", Width: 10},
	}
}

func summaryRows(rounds []storage.Round) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			r.EndReason,
			r.EndedAt.Format("15:04:05"),
		}
	}
	return rows
}

// SessionSummary loads the ledger and renders it.
func SessionSummary(store *storage.Store) (string, error) {
	rounds, err := store.Rounds()
	if err != nil {
		return "", err
	}
	stats, err := store.Stats()
	if err != nil {
		return "", err
	}
	return RenderSummary(rounds, stats), nil
}
