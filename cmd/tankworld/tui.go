package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	tankworld "github.com/mbolaris/tankworld"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

type dashboardModel struct {
	world *tankworld.World
	algos table.Model
}

func initialModel(w *tankworld.World) dashboardModel {
	cols := []table.Column{
		{Title: "Algorithm", Width: 22},
		{Title: "Living", Width: 8},
		{Title: "Ever Born", Width: 10},
		{Title: "Offspring", Width: 10},
		{Title: "Survival", Width: 10},
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(false),
		table.WithHeight(6),
	)
	return dashboardModel{world: w, algos: t}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m dashboardModel) Init() tea.Cmd { return tickCmd() }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.algos, cmd = m.algos.Update(msg)
		return m, cmd
	case tickMsg:
		m.world.Tick()
		m.algos.SetRows(algorithmRows(m.world))
		return m, tickCmd()
	}
	return m, nil
}

func algorithmRows(w *tankworld.World) []table.Row {
	stats := w.ExportStats()
	rows := stats.Algorithms
	if len(rows) > 8 {
		rows = rows[:8]
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row{
			row.Algorithm,
			fmt.Sprintf("%d", row.LivingCount),
			fmt.Sprintf("%d", row.EverBorn),
			fmt.Sprintf("%d", row.TotalOffspring),
			fmt.Sprintf("%.1f%%", row.SurvivalRate*100),
		})
	}
	return out
}

func (m dashboardModel) View() string {
	snap := m.world.Snapshot()
	stats := m.world.ExportStats()

	body := fmt.Sprintf(
		"frame %d    population %-4d    diversity %.3f    survival %.1f%%\nfood %-4d  plants %-4d  crabs %-4d\n\ndeaths: starvation=%d old_age=%d predation=%d poker_loss=%d",
		snap.Frame, len(snap.Fish), stats.Diversity, stats.SurvivalRate*100,
		snap.FoodCount, snap.PlantCount, snap.CrabCount,
		stats.Deaths.Starvation, stats.Deaths.OldAge, stats.Deaths.Predation, stats.Deaths.PokerLoss,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("tankworld"),
		body,
		m.algos.View(),
		hintStyle.Render("\nq to quit"),
	)
}

func runTUI(w *tankworld.World) error {
	model := initialModel(w)
	model.algos.SetRows(algorithmRows(w))
	_, err := tea.NewProgram(model).Run()
	return err
}
