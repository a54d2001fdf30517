// Package tui implements the interactive scene preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/export"
	"github.com/san-kum/skysynth/internal/stats"
	"github.com/san-kum/skysynth/internal/synth"
	"github.com/san-kum/skysynth/internal/viz"
)

const sidebarWidth = 36

var stretches = []export.Stretch{export.Linear, export.Sqrt, export.Log, export.Asinh}

// Model holds the previewed scene and the rendered dataset. Every
// key that changes the scene rebuilds the dataset; stretch and view
// toggles only re-render.
type Model struct {
	scene   *config.Scene
	dataset *synth.Dataset
	summary stats.Summary
	clipped stats.ClippedStats
	hist    stats.Histogram

	stretch  int
	showCat  bool
	noBg     bool
	presets  []string
	presetIx int

	width  int
	height int
	err    error
}

// NewModel previews a copy of scene, so reseeding in the UI never
// touches the caller's value.
func NewModel(scene *config.Scene) Model {
	s := *scene
	m := Model{
		scene:   &s,
		presets: config.ListPresets(),
		stretch: 1,
		width:   100,
		height:  32,
	}
	for i, name := range m.presets {
		if name == s.Name {
			m.presetIx = i
		}
	}
	m.rebuild()
	return m
}

func (m *Model) rebuild() {
	scene := *m.scene
	if m.noBg {
		scene.Background = nil
		scene.ShotNoise = false
	}
	ds, err := synth.Build(&scene)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.dataset = ds
	m.summary = stats.Compute(ds.Image)
	m.clipped, _ = stats.SigmaClipped(ds.Image, 3, 5)
	m.hist, _ = stats.ComputeHistogram(ds.Image, 32)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			m.scene.Seed++
			m.rebuild()
		case "N":
			m.scene.Seed--
			m.rebuild()
		case "s":
			m.stretch = (m.stretch + 1) % len(stretches)
		case "p":
			m.presetIx = (m.presetIx + 1) % len(m.presets)
			s := *config.GetPreset(m.presets[m.presetIx])
			m.scene = &s
			m.rebuild()
		case "b":
			m.noBg = !m.noBg
			m.rebuild()
		case "c":
			m.showCat = !m.showCat
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return viz.Warn.Render("error: "+m.err.Error()) + "\n\n" +
			viz.KeyHint.Render("p: next preset  q: quit")
	}

	imgCols := m.width - sidebarWidth - 6
	if imgCols < 20 {
		imgCols = 20
	}

	var art string
	if m.showCat {
		rows := (m.height - 4) / 2
		if rows < 5 {
			rows = 5
		}
		art = viz.Scatter(m.dataset.Catalog, imgCols, rows, m.scene.Width, m.scene.Height)
	} else {
		var err error
		art, err = viz.Render(m.dataset.Image, imgCols, stretches[m.stretch])
		if err != nil {
			return viz.Warn.Render("render: " + err.Error())
		}
	}
	left := viz.Panel.Render(strings.TrimRight(art, "\n"))

	label := viz.Label.Width(11)
	var sb strings.Builder
	sb.WriteString(viz.Title.Render(strings.ToUpper(m.scene.Name)) + "\n\n")
	sb.WriteString(label.Render("Shape") + viz.Value.Render(fmt.Sprintf("%dx%d", m.scene.Width, m.scene.Height)) + "\n")
	sb.WriteString(label.Render("Seed") + viz.Value.Render(fmt.Sprintf("%d", m.scene.Seed)) + "\n")
	sb.WriteString(label.Render("Sources") + viz.Value.Render(fmt.Sprintf("%d", len(m.dataset.Catalog.Sources))) + "\n")
	sb.WriteString(label.Render("Stretch") + viz.Value.Render(string(stretches[m.stretch])) + "\n")
	if m.noBg {
		sb.WriteString(label.Render("Background") + viz.Warn.Render("off") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(label.Render("Mean") + viz.Value.Render(fmt.Sprintf("%.3f", m.summary.Mean)) + "\n")
	sb.WriteString(label.Render("Median") + viz.Value.Render(fmt.Sprintf("%.3f", m.summary.Median)) + "\n")
	sb.WriteString(label.Render("Std") + viz.Value.Render(fmt.Sprintf("%.3f", m.summary.StdDev)) + "\n")
	sb.WriteString(label.Render("Min / Max") + viz.Value.Render(fmt.Sprintf("%.2f / %.2f", m.summary.Min, m.summary.Max)) + "\n")
	sb.WriteString(label.Render("Sky") + viz.Value.Render(fmt.Sprintf("%.3f ± %.3f", m.clipped.Median, m.clipped.StdDev)) + "\n")
	sb.WriteString("\n")
	sb.WriteString(viz.Label.Render("Histogram") + "\n")
	sb.WriteString(viz.HistogramStrip(m.hist.Counts, sidebarWidth-4) + "\n")
	sb.WriteString(viz.KeyHint.Render("\nn: reseed  s: stretch  p: preset\nb: background  c: catalog  q: quit"))

	right := viz.Panel.Width(sidebarWidth).Render(sb.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// Run opens the interactive preview for a scene.
func Run(scene *config.Scene) error {
	p := tea.NewProgram(NewModel(scene), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
