package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/quantity"
	"github.com/san-kum/gravsim/internal/units"
)

const (
	width           = 60
	height          = 24
	historyCapacity = 600
	trailCapacity   = 400
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(52)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model runs a gravity.System inside a Bubble Tea program, advancing a
// fixed number of ticks per frame and drawing every body on a braille
// canvas.
type Model struct {
	sys           *gravity.System
	dt            quantity.Quantity
	stepsPerFrame int
	lang          units.Language

	canvas  *Canvas
	camera  *Camera
	trails  [][]r3.Vec
	running bool
	steps   int
	err     error

	initialEnergy     float64
	energyHistory     []float64
	separationHistory []float64
}

// NewModel prepares a live view of sys. The camera is fitted to the
// starting positions.
func NewModel(sys *gravity.System, dt quantity.Quantity, stepsPerFrame int, lang units.Language) Model {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	points := make([]r3.Vec, len(sys.Bodies))
	for i, b := range sys.Bodies {
		points[i] = b.Projection()
	}

	m := Model{
		sys:               sys,
		dt:                dt,
		stepsPerFrame:     stepsPerFrame,
		lang:              lang,
		canvas:            NewCanvas(width, height),
		camera:            FitCamera(points),
		trails:            make([][]r3.Vec, len(sys.Bodies)),
		running:           true,
		energyHistory:     make([]float64, 0, historyCapacity),
		separationHistory: make([]float64, 0, historyCapacity),
	}
	if e, err := sys.Energy(); err == nil {
		m.initialEnergy = e.Magnitude()
	}
	m.record()
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and advances the system on every frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case ".":
			m.step()
		case "t":
			NextTheme()
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
		m.draw()
		return m, nil
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerFrame && m.err == nil; i++ {
				m.step()
			}
		}
		m.draw()
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	if err := m.sys.Advance(m.dt); err != nil {
		m.err = err
		m.running = false
		return
	}
	m.steps++
	for i, b := range m.sys.Bodies {
		m.trails[i] = append(m.trails[i], b.Projection())
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}
	m.record()
}

func (m *Model) record() {
	if e, err := m.sys.Energy(); err == nil {
		m.energyHistory = appendCapped(m.energyHistory, e.Magnitude())
	}
	if len(m.sys.Bodies) >= 2 {
		if d, err := m.sys.Separation(0, 1); err == nil {
			m.separationHistory = appendCapped(m.separationHistory, d.Magnitude())
		}
	}
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

func (m *Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.Dots()

	for _, trail := range m.trails {
		for _, p := range trail {
			if x, y, ok := m.camera.Project(p, w, h); ok {
				m.canvas.Set(x, y)
			}
		}
	}
	for _, b := range m.sys.Bodies {
		if x, y, ok := m.camera.Project(b.Projection(), w, h); ok {
			m.canvas.Disc(x, y, 2)
		}
	}
}

func (m Model) View() string {
	theme := CurrentTheme
	canvasView := canvasStyle.Foreground(theme.Primary).Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(TitleStyle.Foreground(theme.Accent).Render("GRAVSIM") + "\n")

	status := "RUNNING"
	switch {
	case m.err != nil:
		status = "HALTED"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(QuantityLine("elapsed", m.sys.Elapsed, m.lang) + "\n")
	s.WriteString(Metric("steps", fmt.Sprintf("%d", m.steps)) + "\n")
	if n := len(m.energyHistory); n > 0 {
		e := m.energyHistory[n-1]
		s.WriteString(Metric("energy", fmt.Sprintf("%.4g J", e)) + "\n")
		if m.initialEnergy != 0 {
			drift := (e - m.initialEnergy) / m.initialEnergy
			s.WriteString(Metric("drift", fmt.Sprintf("%+.3e", drift)) + "\n")
		}
	}
	if len(m.separationHistory) > 1 {
		chart := asciigraph.Plot(m.separationHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("separation"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Trail).Render(chart) + "\n")
	}
	if len(m.energyHistory) > 1 {
		s.WriteString("\n" + SparklineChart(m.energyHistory, 30) + "\n")
	}

	for _, b := range m.sys.Bodies {
		s.WriteString("\n" + BodyCard(b, m.lang) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + ErrorStyle.Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause .:Step Q:Quit T:Theme\nx/y:Rotate +/-:Zoom"))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Run starts the live view on the terminal.
func Run(sys *gravity.System, dt quantity.Quantity, stepsPerFrame int, lang units.Language) error {
	_, err := tea.NewProgram(NewModel(sys, dt, stepsPerFrame, lang), tea.WithAltScreen()).Run()
	return err
}
