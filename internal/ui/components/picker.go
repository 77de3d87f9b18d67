package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	formularydto "medcalc/internal/modules/formulary/dto"
	"medcalc/internal/ui/theme"
)

// PickerSubmitMsg is emitted when the user confirms a medication.
type PickerSubmitMsg struct{ Medication formularydto.MedicationOutput }

// PickerCancelMsg is emitted when the user presses esc.
type PickerCancelMsg struct{}

var pickerStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Peach).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

type medItem struct {
	med formularydto.MedicationOutput
}

func (i medItem) Title() string { return i.med.Name }
func (i medItem) Description() string {
	return fmt.Sprintf("%.2f mg/kg  %.2f mg/%s", i.med.DoseRateMgPerKg, i.med.ConcentrationMgPerUnit, i.med.Unit)
}
func (i medItem) FilterValue() string { return i.med.Name }

// Picker is a filterable medication chooser backed by bubbles/list.
type Picker struct {
	list    list.Model
	visible bool
}

// NewPicker creates an inactive Picker ready to be opened.
func NewPicker() Picker {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Select a Medication"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Picker{list: l}
}

// Visible reports whether the picker is currently shown.
func (p Picker) Visible() bool { return p.visible }

// Open shows the picker over the given medications, selection reset to
// the top.
func (p *Picker) Open(meds []formularydto.MedicationOutput) tea.Cmd {
	p.visible = true
	items := make([]list.Item, len(meds))
	for i, med := range meds {
		items[i] = medItem{med: med}
	}
	cmd := p.list.SetItems(items)
	p.list.ResetFilter()
	p.list.Select(0)
	return cmd
}

// SetSize sets the render size for the overlay.
func (p *Picker) SetSize(w, h int) {
	p.list.SetSize(w, h)
}

func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && p.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			p.visible = false
			return p, func() tea.Msg { return PickerCancelMsg{} }
		case "enter":
			item, ok := p.list.SelectedItem().(medItem)
			if !ok {
				return p, nil
			}
			p.visible = false
			return p, func() tea.Msg { return PickerSubmitMsg{Medication: item.med} }
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p Picker) View() string {
	if !p.visible {
		return ""
	}
	return pickerStyle.Render(p.list.View())
}
