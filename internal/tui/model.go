// Package tui renders the chat widget in a terminal: a toggleable panel with
// a scrolling transcript, an auto-growing input box, and streaming updates
// delivered through the bubbletea event loop.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acmenews/newschat/internal/widget"
)

const (
	// narrowWidth is the terminal analogue of the hosted widget's 800px
	// breakpoint: below it Enter inserts a newline instead of submitting.
	narrowWidth = 80

	maxInputHeight = 5
	minInputHeight = 1

	incomingIcon = "✦ "
)

type entry struct {
	id     widget.EntryID
	kind   widget.Kind
	text   string
	failed bool
}

type sinkEventMsg struct{ event sinkEvent }

type submitDoneMsg struct{ err error }

// Model is the bubbletea model for the chat panel.
type Model struct {
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   Styles

	sink *ChannelSink
	ctrl *widget.Controller

	entries []entry
	index   map[widget.EntryID]int

	open    bool
	ready   bool
	width   int
	height  int
	pending int
}

// New builds the panel around a transport. Options are forwarded to the
// widget controller.
func New(asker widget.Asker, opts ...widget.Option) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about the news..."
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(minInputHeight)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	sink := NewChannelSink()

	return Model{
		textarea: ta,
		spinner:  sp,
		styles:   DefaultStyles(),
		sink:     sink,
		ctrl:     widget.New(sink, asker, opts...),
		index:    make(map[widget.EntryID]int),
		open:     true,
	}
}

// ThreadID exposes the conversation's correlation token.
func (m Model) ThreadID() string {
	return m.ctrl.ThreadID()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, m.listenForEvents())
}

// listenForEvents waits for the next rendering event from the controller.
func (m Model) listenForEvents() tea.Cmd {
	events := m.sink.Events()
	return func() tea.Msg {
		return sinkEventMsg{event: <-events}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sinkEventMsg:
		m.applyEvent(msg.event)
		return m, m.listenForEvents()

	case submitDoneMsg:
		// Failures already reached the transcript through the sink.
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.forward(msg)
}

// handleKey routes key presses: panel toggling first, then input handling.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		// The close control always hides the panel, whatever its state.
		m.open = false
		return m, nil
	}

	if msg.String() == "ctrl+t" {
		m.open = !m.open
		return m, nil
	}

	if !m.open {
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		if msg.Alt || m.width <= narrowWidth {
			m.textarea.InsertString("\n")
			m.resizeInput()
			return m, nil
		}
		return m.submit()
	}

	return m.forward(msg)
}

// submit clears the input and hands its content to the controller. Emptiness
// is the controller's call; blank input never reaches the network.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	m.textarea.Reset()
	m.textarea.SetHeight(minInputHeight)
	m.layout()

	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	m.pending++
	ctrl := m.ctrl
	return m, func() tea.Msg {
		return submitDoneMsg{err: ctrl.Submit(context.Background(), text)}
	}
}

// forward passes a message to the focused child components.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.open {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.resizeInput()

		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// resizeInput grows the input box to fit its content up to a cap, the
// terminal version of resetting to baseline height and growing to fit.
func (m *Model) resizeInput() {
	h := m.textarea.LineCount()
	if h < minInputHeight {
		h = minInputHeight
	}
	if h > maxInputHeight {
		h = maxInputHeight
	}
	if h != m.textarea.Height() {
		m.textarea.SetHeight(h)
		m.layout()
	}
}

// layout recomputes component sizes from the window size.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.textarea.SetWidth(m.width)

	// Title, input box, and help line share the column with the transcript.
	transcriptHeight := m.height - m.textarea.Height() - 2
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, transcriptHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = transcriptHeight
	}

	m.viewport.SetContent(m.renderTranscript())
}

// applyEvent folds one controller-side rendering event into the view state.
func (m *Model) applyEvent(ev sinkEvent) {
	switch ev.kind {
	case evAppend:
		m.index[ev.id] = len(m.entries)
		m.entries = append(m.entries, entry{id: ev.id, kind: ev.entryKind, text: ev.text})
	case evSetText:
		if i, ok := m.index[ev.id]; ok {
			m.entries[i].text = ev.text
		}
	case evAppendText:
		if i, ok := m.index[ev.id]; ok {
			m.entries[i].text += ev.text
		}
	case evMarkError:
		if i, ok := m.index[ev.id]; ok {
			m.entries[i].failed = true
		}
	case evScroll:
		if m.ready {
			m.viewport.GotoBottom()
		}
		return
	}

	if m.ready {
		m.viewport.SetContent(m.renderTranscript())
	}
}

func (m Model) renderTranscript() string {
	if len(m.entries) == 0 {
		return m.styles.Help.Render("Ask a question about the news to get started.")
	}

	wrap := lipgloss.NewStyle().Width(m.viewport.Width)

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		var line string
		switch {
		case e.failed:
			line = m.styles.Error.Render(incomingIcon + e.text)
		case e.kind == widget.KindIncoming:
			line = m.styles.Incoming.Render(incomingIcon + e.text)
		default:
			line = m.styles.Outgoing.Render(e.text)
		}
		lines = append(lines, wrap.Render(line))
	}

	return strings.Join(lines, "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting chat..."
	}

	if !m.open {
		return m.styles.Collapsed.Render("ACME News chat - ctrl+t to open")
	}

	title := m.styles.Title.Render("ACME News")
	if m.pending > 0 {
		title += " " + m.spinner.View()
	}

	help := m.styles.Help.Render("enter: send · alt+enter: newline · esc: close · ctrl+t: toggle · ctrl+c: quit")

	return title + "\n" + m.viewport.View() + "\n" + m.textarea.View() + "\n" + help
}
