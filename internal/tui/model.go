// Package tui provides the chat window front end.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/kipp/internal/chat"
)

// Conversation is the assistant the window talks to.
type Conversation interface {
	// Open restores saved state and returns the greeting.
	Open() string
	// Dispatch runs one line of input and returns the reply.
	Dispatch(input string) string
	// Close persists state and returns the final reply.
	Close() string
}

// Config contains configuration for the chat window.
type Config struct {
	Conversation Conversation
	Username     string
}

// speaker identifies who wrote a transcript entry.
type speaker int

const (
	speakerBot speaker = iota
	speakerUser
)

type entry struct {
	text string
	from speaker
}

// Messages
type openedMsg struct {
	greeting string
}

type closedMsg struct {
	reply string
}

// Model is the bubbletea model for the chat window.
// Fields are ordered to minimize memory padding.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	config   Config
	keys     KeyMap
	styles   Styles
	entries  []entry
	width    int
	height   int
	opened   bool
	closing  bool
	quitting bool
}

// New creates a new chat window model.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. help"
	ti.CharLimit = 1024
	ti.Prompt = "> "
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return Model{
		config:   cfg,
		input:    ti,
		viewport: vp,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.openSession,
	)
}

func (m Model) openSession() tea.Msg {
	return openedMsg{greeting: m.config.Conversation.Open()}
}

func (m Model) closeSession() tea.Msg {
	return closedMsg{reply: m.config.Conversation.Close()}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.updateViewportContent()

	case openedMsg:
		m.opened = true
		m.appendEntry(speakerBot, msg.greeting)

	case closedMsg:
		m.appendEntry(speakerBot, msg.reply)
		m.quitting = true
		return m, tea.Quit
	}

	var tiCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	cmds = append(cmds, tiCmd)

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case m.closing:
		// Ignore input while the list is being saved
		return m, nil

	case key.Matches(msg, m.keys.Send):
		// Open replaces the task list, so nothing is dispatched before it returns
		if !m.opened {
			return m, nil
		}
		return m.send()

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send dispatches the current input line.
// Input starting with the exit command ends the chat after saving.
func (m Model) send() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.input.Reset()

	m.appendEntry(speakerUser, text)
	m.appendEntry(speakerBot, m.config.Conversation.Dispatch(text))

	if chat.IsExit(text) {
		m.closing = true
		m.input.Blur()
		return m, m.closeSession
	}
	return m, nil
}

func (m *Model) appendEntry(from speaker, text string) {
	m.entries = append(m.entries, entry{from: from, text: text})
	m.updateViewportContent()
}

func (m *Model) updateLayout() {
	// Layout:
	// - Header: 1 line
	// - Viewport: remaining (with border)
	// - Input: 1 line (with border)
	// - Status: 1 line
	headerHeight := 1
	inputHeight := 1
	statusHeight := 1

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - 4 // borders
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.viewport.Width = m.width - 2
	m.viewport.Height = vpHeight
	m.input.Width = m.width - 6
	m.help.Width = m.width - 1
}

func (m *Model) updateViewportContent() {
	wrapWidth := m.viewport.Width - 2
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	lines := []string{m.styles.Logo.Render(chat.Logo), ""}
	for _, e := range m.entries {
		lines = append(lines,
			m.badge(e.from),
			m.styles.Message.Render(wrapText(e.text, wrapWidth)),
			m.styles.Separator.Render("---"),
		)
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) badge(from speaker) string {
	if from == speakerUser {
		return m.styles.UserBadge.Render("[" + m.username() + "]")
	}
	return m.styles.BotBadge.Render("[" + chat.Name + "]")
}

func (m *Model) username() string {
	if m.config.Username == "" {
		return "you"
	}
	return m.config.Username
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := " " + chat.Name + " - chatting with " + m.username()
	// Header padding takes two columns
	if m.width > 2 {
		title = truncate.StringWithTail(title, uint(m.width-2), "…")
	}
	b.WriteString(m.styles.Header.Width(m.width).Render(title))
	b.WriteString("\n")

	b.WriteString(m.styles.Border.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.styles.Border.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	status := " " + m.help.View(m.keys)
	switch {
	case m.closing:
		status = " Saving your task list..."
	case !m.opened:
		status = " Loading your task list..."
	}
	b.WriteString(m.styles.StatusLine.Width(m.width).Render(status))

	return b.String()
}

// Run starts the chat window.
func Run(cfg Config) error {
	m := New(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
