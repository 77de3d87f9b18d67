package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dosingdto "medcalc/internal/modules/dosing/dto"
	formularydto "medcalc/internal/modules/formulary/dto"
	"medcalc/internal/ui/theme"
	calcview "medcalc/internal/ui/views/calc"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// The calc view defines its own ports and is handed narrowed bridges.

type catalogPort interface {
	List(ctx context.Context) ([]formularydto.MedicationOutput, error)
}

type dosingPort interface {
	Calculate(ctx context.Context, medication string, customRate, customConcentration float64, customUnit, weightsText string) (dosingdto.CalcOutput, error)
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Choose    key.Binding
	Calc      key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Choose:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose/toggle")),
		Calc:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "calculate")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear error")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Calc, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Choose},
		{k.Calc, k.Clear},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the help overlay and the
// status bar; all dose work is delegated to the calc view through ports.
type Model struct {
	calcView calcview.Model
	log      *log.Logger

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(catalog catalogPort, dosing dosingPort, logger *log.Logger) Model {
	return Model{
		calcView: calcview.New(catalogPortBridge{p: catalog}, dosingPortBridge{p: dosing}),
		log:      logger,
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.calcView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		var cmd tea.Cmd
		m.calcView, cmd = m.calcView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 3})
		return m, cmd

	case calcview.CatalogLoadedMsg:
		if msg.Err != nil {
			m.status = "formulary load failed: " + msg.Err.Error()
			m.log.Printf("formulary load failed: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("%d medications available", len(msg.Medications))
			m.log.Printf("formulary loaded: %d medications", len(msg.Medications))
		}

	case calcview.CalcDoneMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.log.Printf("calculation failed: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("litter total %.2f %s for %d animals",
				msg.Output.Total, msg.Output.Unit, msg.Output.Animals)
			m.log.Printf("calculated %s: total %.2f %s for %d animals",
				msg.Output.Profile.Name, msg.Output.Total, msg.Output.Unit, msg.Output.Animals)
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield most global keys while a text field or the picker owns input.
		if m.calcView.Editing() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		} else {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				m.help.ShowAll = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.calcView, cmd = m.calcView.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	headerH := lipgloss.Height(header)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - headerH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.calcView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	bar := theme.Hot.Render(" medcalc ") + theme.Muted.Render(" litter dose calculator")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:fields  ctrl+s:calc  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a port interface to the minimal interface needed by
// the calc view, keeping the view package free of knowledge about the wider
// port surface.

type catalogPortBridge struct{ p catalogPort }

func (b catalogPortBridge) List(ctx context.Context) ([]formularydto.MedicationOutput, error) {
	return b.p.List(ctx)
}

type dosingPortBridge struct{ p dosingPort }

func (b dosingPortBridge) Calculate(ctx context.Context, medication string, rate, conc float64, unit, weights string) (dosingdto.CalcOutput, error) {
	return b.p.Calculate(ctx, medication, rate, conc, unit, weights)
}
