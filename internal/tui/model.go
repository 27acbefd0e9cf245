package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/command"
)

var (
	greetingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	echoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	replyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// keyMap defines the session key bindings for the help bar.
type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// FullHelp returns the bindings for expanded help. Unused; the session
// keeps the single-line bar.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model is the Bubble Tea model for the interactive assistant session.
type Model struct {
	input      textinput.Model
	dispatcher *command.Dispatcher
	greeting   string
	transcript []string
	keys       keyMap
	help       help.Model
	height     int
	quitting   bool
}

// ModelOptions configures model creation.
type ModelOptions struct {
	Prompt     string
	Greeting   string
	Dispatcher *command.Dispatcher
}

// NewModel creates a Model with a focused input field.
func NewModel(opts ModelOptions) Model {
	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.Focus()

	return Model{
		input:      ti,
		dispatcher: opts.Dispatcher,
		greeting:   opts.Greeting,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and appends the exchange to the
// transcript. Errors come back as reply text, so the loop always continues.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, echoStyle.Render(m.input.Prompt+line))

	reply := m.dispatcher.Dispatch(line)
	if reply.Text != "" {
		m.transcript = append(m.transcript, replyStyle.Render(reply.Text))
	}
	if reply.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the greeting, transcript, input field, and help bar.
func (m Model) View() string {
	var b strings.Builder

	if m.greeting != "" {
		b.WriteString(greetingStyle.Render(m.greeting))
		b.WriteString("\n")
	}

	for _, line := range m.visibleTranscript() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// visibleTranscript trims the transcript to what fits above the input
// field once a terminal height is known.
func (m Model) visibleTranscript() []string {
	if m.height == 0 {
		return m.transcript
	}
	// Greeting, input, and help bar take four rows with spacing.
	limit := m.height - 4
	if limit < 1 || len(m.transcript) <= limit {
		return m.transcript
	}
	return m.transcript[len(m.transcript)-limit:]
}
