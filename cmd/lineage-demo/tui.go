package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/lineage/internal/pipeline"
	"github.com/iw2rmb/lineage/view"
)

var (
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runTUI(cmd *cobra.Command, opts options) error {
	text, compiled, log, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	p := tea.NewProgram(newApp(text, compiled, log),
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

type app struct {
	compiled *pipeline.Compiled
	log      *zap.Logger
	keys     keyMap

	input  textarea.Model
	output view.Model

	lastInput  string
	showLegend bool
	status     string

	width, height int
}

func newApp(text string, compiled *pipeline.Compiled, log *zap.Logger) app {
	in := textarea.New()
	in.ShowLineNumbers = false
	in.CharLimit = 0
	in.MaxHeight = 0
	in.SetValue(text)
	in.Focus()

	a := app{
		compiled: compiled,
		log:      log,
		keys:     defaultKeyMap(),
		input:    in,
		output:   view.New(view.Config{Style: view.DefaultStyle(), ShowSpaces: true}),
	}
	a.rerun()
	return a
}

func (a app) Init() tea.Cmd { return textarea.Blink }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Legend):
			a.showLegend = !a.showLegend
			return a, nil
		case key.Matches(msg, view.DefaultKeyMap().PageUp, view.DefaultKeyMap().PageDown, view.DefaultKeyMap().ClearSelection):
			var cmd tea.Cmd
			a.output, cmd = a.output.Update(msg)
			return a, cmd
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		if a.input.Value() != a.lastInput {
			a.output = a.output.ClearSelection()
			a.status = ""
			a.rerun()
		}
		return a, cmd

	case tea.MouseMsg:
		x, y := a.outputOrigin()
		local := msg
		local.X -= x
		local.Y -= y
		var cmd tea.Cmd
		a.output, cmd = a.output.Update(local)
		return a, cmd

	case view.SelectionMsg:
		a.status = selectionStatus(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// rerun builds a fresh pass from the current input.
func (a *app) rerun() {
	a.lastInput = a.input.Value()
	res := a.compiled.Run(a.lastInput, a.log)
	a.output = a.output.SetContent(res.Output, res.Pass.Relation())
}

func (a app) paneWidths() (left, right int) {
	left = a.width / 2
	return left, a.width - left
}

// paneHeight is the height of a pane's bordered box.
func (a app) paneHeight() int {
	// title row above, status row below
	return maxInt(a.height-2, 2)
}

// outputOrigin is the screen cell of the output content's top-left corner.
func (a app) outputOrigin() (int, int) {
	left, _ := a.paneWidths()
	return left + paneStyle.GetBorderLeftSize(), 1 + paneStyle.GetBorderTopSize()
}

func (a *app) layout() {
	left, right := a.paneWidths()
	inner := a.paneHeight() - paneStyle.GetVerticalFrameSize()
	a.input.SetWidth(maxInt(left-paneStyle.GetHorizontalFrameSize(), 1))
	a.input.SetHeight(maxInt(inner, 1))
	a.output = a.output.SetSize(maxInt(right-paneStyle.GetHorizontalFrameSize(), 0), maxInt(inner, 0))
}

func (a app) View() string {
	if a.width == 0 {
		return ""
	}
	left, right := a.paneWidths()
	base := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			pane(" Input ", a.input.View(), left, a.paneHeight()),
			pane(" Output ", a.output.View(), right, a.paneHeight()),
		),
		hintStyle.Render(runewidth.FillRight(runewidth.Truncate(a.statusLine(), a.width, "…"), a.width)),
	)
	if !a.showLegend {
		return base
	}
	return overlay.Composite(legend(), base, overlay.Center, overlay.Center, 0, 0)
}

func (a app) statusLine() string {
	if a.status != "" {
		return a.status
	}
	return "click/drag in Output to select · " + a.keys.Legend.Help().Key + " legend · " + a.keys.Quit.Help().Key + " quit"
}

func pane(title, body string, width, height int) string {
	w := maxInt(width-paneStyle.GetHorizontalFrameSize(), 0)
	h := maxInt(height-paneStyle.GetVerticalFrameSize(), 0)
	head := titleStyle.Render(runewidth.Truncate(title, width, "…"))
	box := paneStyle.Width(w).Height(h).MaxHeight(height).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, head, box)
}

func selectionStatus(msg view.SelectionMsg) string {
	if len(msg.IDs) == 0 {
		return ""
	}
	return fmt.Sprintf("%d selected · %d same · %d upstream · %d downstream",
		msg.Counts[view.ClassSelected],
		msg.Counts[view.ClassSame],
		msg.Counts[view.ClassUpstream],
		msg.Counts[view.ClassDownstream])
}

func legend() string {
	st := view.DefaultStyle()
	rows := []string{
		titleStyle.Render("Legend"),
		st.Selected.Render("■") + " selected",
		st.Same.Render("■") + " same character",
		st.Upstream.Render("■") + " source of selection",
		st.Downstream.Render("■") + " derived from selection",
	}
	return paneStyle.Padding(0, 1).Render(strings.Join(rows, "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
