package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/perron/internal/density"
	"github.com/san-kum/perron/internal/transfer"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps an operator chain one application per tick and plots the
// current iterate.
type Model struct {
	r         float64
	seedName  string
	seed      density.Density
	cur       *density.Sampled
	iteration int
	gridN     int
	running   bool
	interval  time.Duration
}

// NewModel initializes the live view on the seed density.
func NewModel(r float64, seedName string, seed density.Density, gridN int, fps int) Model {
	if fps < 1 {
		fps = 2
	}
	return Model{
		r:        r,
		seedName: seedName,
		seed:     seed,
		cur:      density.Tabulate(seed, gridN),
		gridN:    gridN,
		running:  true,
		interval: time.Second / time.Duration(fps),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.adjustR(1.02)
		case "down", "j":
			m.adjustR(0.98)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step applies the operator once, resampling onto the grid so chain depth
// never grows the per-tick cost.
func (m *Model) step() {
	m.cur = density.Tabulate(transfer.Apply(m.r, m.cur), m.gridN)
	m.iteration++
}

// reset drops the chain back to the seed density.
func (m *Model) reset() {
	m.cur = density.Tabulate(m.seed, m.gridN)
	m.iteration = 0
}

// adjustR tunes the parameter and restarts the chain; iterates for the old
// parameter are not comparable.
func (m *Model) adjustR(factor float64) {
	m.r *= factor
	if m.r > 4 {
		m.r = 4
	}
	if m.r < 0 {
		m.r = 0
	}
	m.reset()
}

func (m Model) View() string {
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("TRANSFER OPERATOR — "+strings.ToUpper(m.seedName)) + "\n")
	s.WriteString(status + "\n")

	chart := asciigraph.Plot(m.cur.Values(),
		asciigraph.Height(14),
		asciigraph.Width(78),
		asciigraph.Caption(fmt.Sprintf("T^%d rho on [0,1]", m.iteration)),
	)
	s.WriteString(graphStyle.Render(chart) + "\n")

	s.WriteString(labelStyle.Render("r") + valueStyle.Render(fmt.Sprintf("%.4f", m.r)) + "\n")
	s.WriteString(labelStyle.Render("iteration") + valueStyle.Render(fmt.Sprintf("%d", m.iteration)) + "\n")
	s.WriteString(labelStyle.Render("mass") + valueStyle.Render(fmt.Sprintf("%.4f", transfer.Mass(m.cur, m.gridN-1))) + "\n")
	s.WriteString(labelStyle.Render("support") + valueStyle.Render(fmt.Sprintf("[0, %.4f)", m.r/4)) + "\n")

	s.WriteString(helpStyle.Render("SP:Pause R:Reset ↑↓:Tune r Q:Quit"))
	return s.String()
}
