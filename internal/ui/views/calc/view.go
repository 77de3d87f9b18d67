package calc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dosingdto "medcalc/internal/modules/dosing/dto"
	formularydto "medcalc/internal/modules/formulary/dto"
	"medcalc/internal/ui/components"
	"medcalc/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	List(ctx context.Context) ([]formularydto.MedicationOutput, error)
}

type DosingPort interface {
	Calculate(ctx context.Context, medication string, customRate, customConcentration float64, customUnit, weightsText string) (dosingdto.CalcOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CatalogLoadedMsg struct {
	Medications []formularydto.MedicationOutput
	Err         error
}

type CalcDoneMsg struct {
	Output dosingdto.CalcOutput
	Err    error
}

// ─── focus ───────────────────────────────────────────────────────────────────

type focusArea int

const (
	focusMedication focusArea = iota
	focusRate
	focusConcentration
	focusUnit
	focusWeights
	focusCount
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the dose calculator.
type Model struct {
	catalog CatalogPort
	dosing  DosingPort

	picker  components.Picker
	rate    textinput.Model
	conc    textinput.Model
	weights textarea.Model
	results viewport.Model
	spinner spinner.Model

	medications []formularydto.MedicationOutput
	selected    string
	unit        string
	focus       focusArea

	output      dosingdto.CalcOutput
	hasOutput   bool
	lastErr     string
	loading     bool
	calculating bool
	width       int
	height      int
}

func New(catalog CatalogPort, dosing DosingPort) Model {
	rate := textinput.New()
	rate.Placeholder = "mg/kg"
	rate.CharLimit = 12
	rate.Width = 14
	rate.Prompt = ""

	conc := textinput.New()
	conc.Placeholder = "mg per unit"
	conc.CharLimit = 12
	conc.Width = 14
	conc.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "one weight per line, in lbs"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	vp.SetContent(theme.Muted.Render("Pick a medication, enter weights, press ctrl+s"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		catalog: catalog,
		dosing:  dosing,
		picker:  components.NewPicker(),
		rate:    rate,
		conc:    conc,
		weights: ta,
		results: vp,
		spinner: sp,
		unit:    "mL",
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalogCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.hasOutput {
			m.results.SetContent(m.renderResults())
		}
		return m, nil

	case CatalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.lastErr = "formulary: " + msg.Err.Error()
			return m, nil
		}
		m.medications = msg.Medications
		return m, nil

	case CalcDoneMsg:
		m.calculating = false
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
			return m, nil
		}
		m.lastErr = ""
		m.output = msg.Output
		m.hasOutput = true
		m.results.SetContent(m.renderResults())
		m.results.GotoTop()
		return m, nil

	case components.PickerSubmitMsg:
		m.selected = msg.Medication.Name
		return m, nil

	case components.PickerCancelMsg:
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.calculating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// While the picker overlay is up it owns every remaining message.
	if m.picker.Visible() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m.routeToFocused(msg)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading formulary…")
	}
	if m.picker.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.picker.View())
	}

	formW := m.width * 4 / 10
	resultsW := m.width - formW

	formPane := lipgloss.NewStyle().
		Width(formW).
		Height(m.height).
		Render(m.renderForm())

	resultsPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(resultsW - 2).
		Height(m.height - 2).
		Render(m.results.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, formPane, resultsPane)
}

// Editing reports whether keystrokes are currently owned by a text field
// or the picker. The app model checks this to avoid consuming global keys.
func (m Model) Editing() bool {
	return m.picker.Visible() || m.rate.Focused() || m.conc.Focused() || m.weights.Focused()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		cmd := m.startCalc()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, m.spinner.Tick)
	case "esc":
		m.lastErr = ""
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	case "enter":
		switch m.focus {
		case focusMedication:
			if len(m.medications) == 0 {
				return m, nil
			}
			cmd := m.picker.Open(m.medications)
			return m, cmd
		case focusRate:
			return m.setFocus(focusConcentration)
		case focusConcentration:
			return m.setFocus(focusUnit)
		case focusUnit:
			m.toggleUnit()
			return m, nil
		}
	case " ", "space":
		if m.focus == focusUnit {
			m.toggleUnit()
			return m, nil
		}
	}
	return m.routeToFocused(msg)
}

func (m Model) routeToFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusRate:
		m.rate, cmd = m.rate.Update(msg)
	case focusConcentration:
		m.conc, cmd = m.conc.Update(msg)
	case focusWeights:
		m.weights, cmd = m.weights.Update(msg)
	default:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m Model) setFocus(target focusArea) (Model, tea.Cmd) {
	m.focus = target
	m.rate.Blur()
	m.conc.Blur()
	m.weights.Blur()
	switch target {
	case focusRate:
		return m, m.rate.Focus()
	case focusConcentration:
		return m, m.conc.Focus()
	case focusWeights:
		return m, m.weights.Focus()
	}
	return m, nil
}

func (m *Model) toggleUnit() {
	if m.unit == "mL" {
		m.unit = "Pill"
	} else {
		m.unit = "mL"
	}
}

// startCalc validates the custom fields and kicks off the calculation.
// A nil return means validation failed and lastErr explains why.
func (m *Model) startCalc() tea.Cmd {
	rate, err := parseCustom("dose rate", m.rate.Value())
	if err != nil {
		m.lastErr = err.Error()
		return nil
	}
	conc, err := parseCustom("concentration", m.conc.Value())
	if err != nil {
		m.lastErr = err.Error()
		return nil
	}
	m.calculating = true
	m.lastErr = ""

	medication := m.selected
	unit := m.unit
	weights := m.weights.Value()
	port := m.dosing
	return func() tea.Msg {
		out, err := port.Calculate(context.Background(), medication, rate, conc, unit, weights)
		return CalcDoneMsg{Output: out, Err: err}
	}
}

func parseCustom(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("custom %s %q is not a number", field, raw)
	}
	return v, nil
}

func (m Model) customActive() bool {
	rate, errRate := strconv.ParseFloat(strings.TrimSpace(m.rate.Value()), 64)
	conc, errConc := strconv.ParseFloat(strings.TrimSpace(m.conc.Value()), 64)
	return errRate == nil && errConc == nil && rate > 0 && conc > 0
}

func (m Model) renderForm() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Litter Dose Calculator") + "\n\n")

	med := m.selected
	if med == "" {
		med = "Select a Medication"
	}
	sb.WriteString(m.fieldLabel(focusMedication, "medication") + " " + med + "\n")
	sb.WriteString(m.fieldLabel(focusRate, "dose rate") + " " + m.rate.View() + "\n")
	sb.WriteString(m.fieldLabel(focusConcentration, "concentration") + " " + m.conc.View() + "\n")
	sb.WriteString(m.fieldLabel(focusUnit, "unit") + " " + m.unit + "\n")
	if m.customActive() {
		sb.WriteString(theme.Warn.Render("using custom dose values") + "\n")
	}
	sb.WriteString("\n" + m.fieldLabel(focusWeights, "weights (lbs)") + "\n")
	sb.WriteString(m.weights.View() + "\n")
	if m.calculating {
		sb.WriteString("\n" + m.spinner.View() + " calculating…")
	}
	if m.lastErr != "" {
		sb.WriteString("\n" + theme.Err.Render(m.lastErr))
	}
	sb.WriteString("\n" + theme.Muted.Render("ctrl+s: calculate"))
	return sb.String()
}

func (m Model) fieldLabel(area focusArea, label string) string {
	if m.focus == area {
		return theme.Hot.Render("▸ " + label + ":")
	}
	return theme.Muted.Render("  " + label + ":")
}

func (m Model) renderResults() string {
	out := m.output
	var sb strings.Builder
	profile := fmt.Sprintf("%s: %.2f mg/kg at %.2f mg/%s",
		out.Profile.Name, out.Profile.DoseRateMgPerKg, out.Profile.ConcentrationMgPerUnit, out.Profile.Unit)
	sb.WriteString(theme.Title.Render(profile) + "\n\n")
	for _, r := range out.Results {
		if r.Error != "" {
			sb.WriteString(theme.Err.Render(fmt.Sprintf("animal %d: %s", r.Animal, r.Error)) + "\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("animal %d (%s lbs): %.2f %s\n", r.Animal, r.Raw, r.Dose, r.Unit))
	}
	sb.WriteString("\n" + theme.Hot.Render(fmt.Sprintf("litter total (one dose): %.2f %s", out.Total, out.Unit)) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d animals dosed at %s", out.Animals, out.CalculatedAt.Format("15:04:05"))))
	return sb.String()
}

func (m *Model) resize() {
	formW := m.width * 4 / 10
	resultsW := m.width - formW

	taW := formW - 4
	if taW < 10 {
		taW = 10
	}
	taH := m.height - 14
	if taH > 8 {
		taH = 8
	}
	if taH < 3 {
		taH = 3
	}
	m.weights.SetWidth(taW)
	m.weights.SetHeight(taH)

	m.results.Width = resultsW - 4
	m.results.Height = m.height - 4
	if m.results.Height < 1 {
		m.results.Height = 1
	}

	pickerW := m.width - 8
	if pickerW > 64 {
		pickerW = 64
	}
	pickerH := m.height - 4
	if pickerH > 20 {
		pickerH = 20
	}
	m.picker.SetSize(pickerW, pickerH)
}

func (m Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		meds, err := m.catalog.List(context.Background())
		return CatalogLoadedMsg{Medications: meds, Err: err}
	}
}
