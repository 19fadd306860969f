package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fete/internal/cli/formatter"
	"github.com/alexanderramin/fete/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// enhanceChatModel is an interactive refinement loop for an event plan.
// Each turn sends the current plan text plus the user's request and shows
// the revised text; the revision becomes the base for the next turn.
// Nothing is persisted — the stored plan is only replaced by regeneration.
type enhanceChatModel struct {
	app   *App
	event *domain.Event

	input    textinput.Model
	vp       viewport.Model
	ready    bool
	waiting  bool
	planText string
	messages []string
}

type enhanceResultMsg struct {
	text string
	err  error
}

func newEnhanceChatModel(app *App, event *domain.Event) *enhanceChatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &enhanceChatModel{
		app:      app,
		event:    event,
		input:    ti,
		planText: event.CurrentPlanText(),
	}

	m.messages = append(m.messages,
		formatter.Header("Enhance: "+event.DisplayTitle()),
		formatter.FormatPlanText(m.planText),
		"",
		formatter.Dim("Describe a change, or press esc to leave."),
	)

	return m
}

func (m *enhanceChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *enhanceChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve two lines for the prompt row and a separator.
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			request := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if request == "" {
				return m, nil
			}
			return m.startTurn(request)
		}

	case enhanceResultMsg:
		m.waiting = false
		// Drop the "Thinking..." placeholder appended when the turn started.
		if n := len(m.messages); n > 0 {
			m.messages = m.messages[:n-1]
		}
		if msg.err != nil {
			m.messages = append(m.messages,
				formatter.StyleRed.Render(fmt.Sprintf("Error: %v", msg.err)))
		} else {
			m.planText = msg.text
			m.messages = append(m.messages, formatter.FormatPlanText(msg.text))
		}
		m.refreshViewport()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *enhanceChatModel) startTurn(request string) (tea.Model, tea.Cmd) {
	m.waiting = true
	m.messages = append(m.messages,
		formatter.Dim("You: ")+request,
		formatter.Dim("Thinking..."),
	)
	m.refreshViewport()

	planText := m.planText
	planner := m.app.Planner
	return m, func() tea.Msg {
		text, err := planner.Enhance(context.Background(), planText, request)
		return enhanceResultMsg{text: text, err: err}
	}
}

func (m *enhanceChatModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(strings.Join(m.messages, "\n"))
	m.vp.GotoBottom()
}

func (m *enhanceChatModel) View() string {
	prompt := formatter.StylePurple.Render("enhance") + formatter.Dim("> ")

	if !m.ready {
		return strings.Join(m.messages, "\n") + "\n" + prompt + m.input.View()
	}
	return m.vp.View() + "\n" + prompt + m.input.View()
}

// runEnhanceChat starts the interactive enhancement loop for an event that
// already has a plan.
func runEnhanceChat(app *App, event *domain.Event) error {
	if event.CurrentPlanText() == "" {
		return fmt.Errorf("event %s has no plan to enhance; generate one first", event.DisplayID())
	}

	p := tea.NewProgram(newEnhanceChatModel(app, event))
	_, err := p.Run()
	return err
}
