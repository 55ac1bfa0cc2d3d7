package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/service/shift"
)

var shifts = []shift.Shift{shift.Morning, shift.Night}

// ScheduleModel asks for the sheet date and the shift.
type ScheduleModel struct {
	date    textinput.Model
	choice  int
	err     string
	done    bool
	aborted bool

	Date  time.Time
	Shift shift.Shift
}

func NewScheduleModel(date time.Time, s shift.Shift) ScheduleModel {
	ti := textinput.New()
	ti.Placeholder = "DD/MM/AAAA"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = ""
	if !date.IsZero() {
		ti.SetValue(date.Format(constants.DateLayout))
	}
	ti.Focus()

	m := ScheduleModel{date: ti}
	if s == shift.Night {
		m.choice = 1
	}
	return m
}

func (m ScheduleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.choice = (m.choice + 1) % len(shifts)
			return m, nil
		case "enter":
			d, err := time.Parse(constants.DateLayout, strings.TrimSpace(m.date.Value()))
			if err != nil {
				m.err = "data inválida, use DD/MM/AAAA"
				return m, nil
			}
			m.Date = d
			m.Shift = shifts[m.choice]
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.date, cmd = m.date.Update(msg)
	m.err = ""
	return m, cmd
}

func (m ScheduleModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Folha de Tarefa") + "\n\n")
	sb.WriteString(labelStyle.Render("Data: ") + m.date.View() + "\n")

	options := make([]string, len(shifts))
	for i, s := range shifts {
		style := inactiveOption
		if i == m.choice {
			style = activeOption
		}
		options[i] = style.Render(s.Label())
	}
	sb.WriteString(labelStyle.Render("Turno: ") + strings.Join(options, " ") + "\n")

	if m.err != "" {
		sb.WriteString("\n" + errStyle.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + hintStyle.Render("tab: trocar turno · enter: confirmar · esc: cancelar"))
	return frameStyle.Render(sb.String())
}

// Result returns the confirmed date and shift, or ErrAborted.
func (m ScheduleModel) Result() (time.Time, shift.Shift, error) {
	if m.aborted || !m.done {
		return time.Time{}, "", ErrAborted
	}
	return m.Date, m.Shift, nil
}

// PickSchedule asks for the date and shift, prefilled with the given values.
func PickSchedule(date time.Time, s shift.Shift) (time.Time, shift.Shift, error) {
	const op = "ui.picker.PickSchedule"

	final, err := tea.NewProgram(NewScheduleModel(date, s)).Run()
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%s: %w", op, err)
	}

	d, sh, err := final.(ScheduleModel).Result()
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%s: %w", op, err)
	}

	return d, sh, nil
}
