// Package live renders a running simulation in the terminal, one
// simulated year per animation tick.
package live

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/forestlab/silva/internal/forest"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a landscape year by year and plots the carbon stock.
type Model struct {
	land     *forest.Landscape
	project  string
	years    int
	interval time.Duration
	carbon   []float64
	err      error
	done     bool
}

// NewModel wraps a freshly built landscape for live viewing.
func NewModel(land *forest.Landscape, project string, years int, fps int) Model {
	if fps <= 0 {
		fps = 5
	}
	return Model{
		land:     land,
		project:  project,
		years:    years,
		interval: time.Second / time.Duration(fps),
		carbon:   make([]float64, 0, years+1),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case TickMsg:
		if m.done || m.err != nil {
			return m, nil
		}
		m.carbon = append(m.carbon, m.land.Carbon())
		if m.land.Year() >= m.years {
			m.done = true
			return m, nil
		}
		if err := m.land.AdvanceYear(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	s := headerStyle.Render(fmt.Sprintf("silva live — %s", m.project)) + "\n"

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}
	s += row("year", fmt.Sprintf("%d / %d", m.land.Year(), m.years))
	s += row("trees", fmt.Sprintf("%d", m.land.TreeCount()))
	s += row("carbon", fmt.Sprintf("%.1f t", m.land.Carbon()/1000))

	if len(m.carbon) >= 2 {
		graph := asciigraph.Plot(m.carbon,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("carbon stock [kg]"),
		)
		s += graphStyle.Render(graph) + "\n"
	}

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("engine error: %v", m.err)) + "\n"
	} else if m.done {
		s += headerStyle.Render("run finished") + "\n"
	}

	s += helpStyle.Render("q: quit")
	return s
}
