package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the operator leaves a picker without choosing.
var ErrAborted = errors.New("selection aborted")

// FileModel lets the operator browse to the spreadsheet export.
type FileModel struct {
	picker   filepicker.Model
	selected string
	notice   string
	aborted  bool
}

func NewFileModel(dir string) FileModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx", ".xls"}
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	fp.Height = 15
	return FileModel{picker: fp}
}

func (m FileModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m FileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selected = path
		return m, tea.Quit
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = path + " não é uma planilha .xlsx/.xls"
	}

	return m, cmd
}

func (m FileModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Selecione a planilha de atividades") + "\n\n")
	sb.WriteString(m.picker.View() + "\n")
	if m.notice != "" {
		sb.WriteString(errStyle.Render(m.notice) + "\n")
	}
	sb.WriteString(hintStyle.Render("enter: abrir/selecionar · esc: cancelar"))
	return frameStyle.Render(sb.String())
}

// Selected returns the chosen file, or ErrAborted.
func (m FileModel) Selected() (string, error) {
	if m.aborted || m.selected == "" {
		return "", ErrAborted
	}
	return m.selected, nil
}

// PickFile runs the file browser starting at dir.
func PickFile(dir string) (string, error) {
	const op = "ui.picker.PickFile"

	final, err := tea.NewProgram(NewFileModel(dir)).Run()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path, err := final.(FileModel).Selected()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path, nil
}
