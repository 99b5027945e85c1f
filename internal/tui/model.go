package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"resume-chat/internal/assistant"
)

// Port is the TUI-facing subset of the assistant.
type Port interface {
	ProcessQuery(sess *assistant.Session, query string) string
	TypingDelay(response string) time.Duration
}

type message struct {
	fromUser bool
	text     string
}

// answerMsg delivers an assistant reply after the simulated typing delay.
type answerMsg struct {
	text string
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	service    Port
	session    *assistant.Session
	input      textinput.Model
	viewport   viewport.Model
	renderer   *glamour.TermRenderer
	transcript []message
	name       string
	status     string
	typing     bool
	ready      bool
}

const suggestions = "Try: \"What is your experience?\", \"Tell me about your projects\", \"How can I contact you?\""

// New creates a chat model for the given assistant and profile owner name.
func New(service Port, session *assistant.Session, name string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about experience, projects, skills, education..."
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	greeting := "Hi! I can answer questions about " + name + "'s background.\n\n" + suggestions
	return Model{
		service:    service,
		session:    session,
		input:      ti,
		viewport:   vp,
		transcript: []message{{text: greeting}},
		name:       name,
		status:     "Ready.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved - th
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-transcriptBoxStyle.GetHorizontalFrameSize())
		m.viewport.Height = vh
		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(m.viewport.Width),
		); err == nil {
			m.renderer = r
		}
		m.refresh()
		return m, nil

	case answerMsg:
		m.typing = false
		m.transcript = append(m.transcript, message{text: msg.text})
		m.status = "Ready."
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q == "" || m.typing {
				return m, nil
			}
			m.input.Reset()
			m.transcript = append(m.transcript, message{fromUser: true, text: q})
			m.typing = true
			m.status = "Typing..."
			m.refresh()
			answer := m.service.ProcessQuery(m.session, q)
			delay := m.service.TypingDelay(answer)
			return m, tea.Tick(delay, func(time.Time) tea.Msg {
				return answerMsg{text: answer}
			})
		case "ctrl+l":
			m.session.Clear()
			m.transcript = m.transcript[:1]
			m.status = "History cleared."
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Chat with " + m.name)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for i, msg := range m.transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		if msg.fromUser {
			b.WriteString(userStyle.Render("You: "+msg.text) + "\n")
			continue
		}
		b.WriteString(m.renderMarkdown(msg.text))
	}
	if m.typing {
		b.WriteString("\n" + statusStyle.Render("..."))
	}
	return b.String()
}

func (m Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text + "\n"
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.TrimRight(out, "\n") + "\n"
}

var (
	headerStyle        = lipgloss.NewStyle().Bold(true)
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
