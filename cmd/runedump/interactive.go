package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	runedecode "github.com/chronos-tachyon/go-runedecode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input   textinput.Model
	opts    runedecode.Options
	entries []entry
	height  int
}

func newInteractiveModel(opts runedecode.Options) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type or paste text to decode"
	ti.Focus()
	ti.CharLimit = 4096

	return &interactiveModel{
		input:  ti,
		opts:   opts,
		height: 24,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			if m.opts.Mode == runedecode.ModeUTF8 {
				m.opts.Mode = runedecode.ModeASCII
			} else {
				m.opts.Mode = runedecode.ModeUTF8
			}
			m.decode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.decode()
	return m, cmd
}

// decode re-decodes the whole input line.
func (m *interactiveModel) decode() {
	m.entries = m.entries[:0]
	d := runedecode.New(strings.NewReader(m.input.Value()), m.opts)
	for {
		e, ok := next(d)
		if !ok {
			return
		}
		m.entries = append(m.entries, e)
		if e.err != nil {
			return
		}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("runedump  %s", m.opts.Mode)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	rows := m.height - 8
	if rows < 1 {
		rows = 1
	}
	shown := m.entries
	if len(shown) > rows {
		shown = shown[len(shown)-rows:]
	}
	for _, e := range shown {
		b.WriteString(e.format(true))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d result(s)  tab: switch mode  esc: quit", len(m.entries))))
	return b.String()
}

func runInteractive(opts runedecode.Options) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
