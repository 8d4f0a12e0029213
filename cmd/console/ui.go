package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

const placeholderText = "Your answer..."

// lineStyle tags a transcript line for rendering.
type lineStyle int

const (
	lineNarrative lineStyle = iota
	lineNotice
	lineError
	linePlayer
)

var (
	storyPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// transcriptLine is one rendered entry of the play transcript.
type transcriptLine struct {
	text  string
	style lineStyle
}

// playerUI is the BubbleTea model that runs the console player.
// https://github.com/charmbracelet/bubbletea
type playerUI struct {
	party         *party.Party
	transcript    []transcriptLine
	prompt        *promptRequest
	storyViewport viewport.Model
	metaViewport  viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	inputError    string
	gameOver      string
	showQuitModal bool
}

func newPlayerUI(p *party.Party) playerUI {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = hintStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	storyVp := viewport.New(50, 20)
	storyVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return playerUI{
		party:         p,
		textarea:      ta,
		storyViewport: storyVp,
		metaViewport:  metaVp,
	}
}

func (m playerUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m playerUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.storyViewport, vpCmd = m.storyViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.writeStoryContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case transcriptMsg:
		m.transcript = append(m.transcript, transcriptLine{text: msg.text, style: msg.style})
		m.writeStoryContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case promptMsg:
		m.prompt = msg.req
		m.inputError = ""
		m.textarea.Reset()
		m.textarea.Focus()
		m.writeStoryContent()
		return m, textarea.Blink

	case gameOverMsg:
		m.gameOver = msg.reason
		m.transcript = append(m.transcript, transcriptLine{text: msg.reason, style: lineNotice})
		m.writeStoryContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			_ = clipboard.WriteAll(m.lastNarrative())
			return m, nil
		case tea.KeyEnter:
			if m.gameOver != "" {
				return m, tea.Quit
			}
			return m.answerPrompt()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.storyViewport, vpCmd = m.storyViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *playerUI) layout() {
	storyWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - storyWidth - 6

	m.storyViewport.Width = storyWidth - 2
	m.storyViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(storyWidth - 4)
}

// answerPrompt parses the player's input for the active prompt and
// replies to the engine goroutine.
func (m playerUI) answerPrompt() (tea.Model, tea.Cmd) {
	if m.prompt == nil {
		return m, nil
	}
	input := strings.TrimSpace(m.textarea.Value())

	reply, err := parseAnswer(m.prompt, input)
	if err != "" {
		m.inputError = err
		m.writeStoryContent()
		return m, nil
	}

	m.transcript = append(m.transcript, transcriptLine{text: "> " + input, style: linePlayer})
	m.prompt.reply <- reply
	m.prompt = nil
	m.inputError = ""
	m.textarea.Reset()
	m.writeStoryContent()
	m.metaViewport.SetContent(m.writeMetadata())
	return m, nil
}

// parseAnswer validates input against the prompt. The returned string is
// empty on success, a reprompt hint otherwise.
func parseAnswer(req *promptRequest, input string) (promptReply, string) {
	switch req.kind {
	case promptNumber:
		n, err := strconv.Atoi(input)
		if err != nil {
			return promptReply{}, "Enter a number."
		}
		if n < req.min || n > req.max {
			return promptReply{}, fmt.Sprintf("Enter a number between %d and %d.", req.min, req.max)
		}
		return promptReply{number: n}, ""

	case promptDice:
		return promptReply{}, ""

	case promptConfirm:
		switch strings.ToLower(input) {
		case "y", "yes":
			return promptReply{confirmed: true}, ""
		case "n", "no":
			return promptReply{confirmed: false}, ""
		}
		return promptReply{}, "Answer Y or N."

	case promptIcons, promptCharacter:
		picks, err := parsePicks(input, len(req.options))
		if err != "" {
			return promptReply{}, err
		}
		if len(picks) < req.min || len(picks) > req.max {
			if req.min == req.max {
				return promptReply{}, fmt.Sprintf("Pick exactly %d.", req.min)
			}
			return promptReply{}, fmt.Sprintf("Pick between %d and %d.", req.min, req.max)
		}
		return promptReply{picks: picks}, ""
	}
	return promptReply{}, "Unsupported prompt."
}

// parsePicks reads comma-separated 1-based option numbers.
func parsePicks(input string, optionCount int) ([]int, string) {
	if input == "" {
		return nil, "Enter option numbers, comma separated."
	}
	seen := make(map[int]bool)
	var picks []int
	for _, field := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, "Enter option numbers, comma separated."
		}
		if n < 1 || n > optionCount {
			return nil, fmt.Sprintf("Options run from 1 to %d.", optionCount)
		}
		if seen[n] {
			return nil, "Each option at most once."
		}
		seen[n] = true
		picks = append(picks, n-1)
	}
	return picks, ""
}

// lastNarrative returns the most recent narrative block, for clipboard
// copy.
func (m playerUI) lastNarrative() string {
	for i := len(m.transcript) - 1; i >= 0; i-- {
		if m.transcript[i].style == lineNarrative {
			return m.transcript[i].text
		}
	}
	return ""
}

func styleForColor(color string) lineStyle {
	switch strings.ToLower(color) {
	case "red":
		return lineError
	case "yellow":
		return lineNotice
	default:
		return lineNarrative
	}
}

func (m *playerUI) writeStoryContent() {
	storyWidth := m.storyViewport.Width - 6
	if storyWidth < 10 {
		storyWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("GAMEBOOK ENGINE") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", storyWidth-6)) + "\n\n")

	for _, line := range m.transcript {
		wrapped := wordwrap.String(line.text, storyWidth)
		switch line.style {
		case lineNarrative:
			content.WriteString(narrativeStyle.Render(wrapped))
		case lineNotice:
			content.WriteString(noticeStyle.Render(wrapped))
		case lineError:
			content.WriteString(errorStyle.Render(wrapped))
		case linePlayer:
			content.WriteString(playerStyle.Render(wrapped))
		}
		content.WriteString("\n\n")
	}

	if m.prompt != nil {
		content.WriteString(m.renderPrompt(storyWidth))
	}
	if m.gameOver != "" {
		content.WriteString(hintStyle.Render("Press Enter to leave."))
	}

	m.storyViewport.SetContent(content.String())
	m.storyViewport.GotoBottom()
}

func (m *playerUI) renderPrompt(width int) string {
	var content strings.Builder
	content.WriteString(promptStyle.Render(wordwrap.String(m.prompt.message, width)) + "\n")

	switch m.prompt.kind {
	case promptIcons, promptCharacter:
		for i, option := range m.prompt.options {
			content.WriteString(fmt.Sprintf("  %d - %s\n", i+1, option))
		}
		if m.prompt.min == 1 && m.prompt.max == 1 {
			content.WriteString(hintStyle.Render("Enter an option number.") + "\n")
		} else {
			content.WriteString(hintStyle.Render(
				fmt.Sprintf("Enter %d-%d option numbers, comma separated.", m.prompt.min, m.prompt.max)) + "\n")
		}
	case promptNumber:
		content.WriteString(hintStyle.Render(
			fmt.Sprintf("Enter a number between %d and %d.", m.prompt.min, m.prompt.max)) + "\n")
	case promptDice:
		content.WriteString(hintStyle.Render("Press Enter to roll.") + "\n")
	case promptConfirm:
		content.WriteString(hintStyle.Render("Y or N.") + "\n")
	}

	if m.inputError != "" {
		content.WriteString(errorStyle.Render(m.inputError) + "\n")
	}
	return content.String()
}

func (m *playerUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("THE PARTY") + "\n\n")

	for _, c := range m.party.Members() {
		marker := "•"
		if !c.Alive() {
			marker = "†"
		}
		content.WriteString(fmt.Sprintf("%s %s\n", marker, c.Class))
		content.WriteString(fmt.Sprintf("  END %d/%d  ARM %d\n",
			c.Attribute(names.Endurance), c.Maximum(names.Endurance), c.Attribute(names.Armour)))
		for _, s := range c.Statuses() {
			content.WriteString("  [" + string(s) + "]\n")
		}
	}

	content.WriteString(fmt.Sprintf("\nGold: %d\n", m.party.Quantity(names.Gold)))
	content.WriteString(fmt.Sprintf("Arrows: %d\n", m.party.Quantity(names.Arrow)))

	if len(m.party.Vars) > 0 {
		content.WriteString("\nVariables:\n")
		for k, v := range m.party.Vars {
			content.WriteString(fmt.Sprintf("• %s: %s\n", k, v))
		}
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Answer\n")
	content.WriteString("• Ctrl+Y: Copy text\n")

	return content.String()
}

func (m playerUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m playerUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Abandon your adventure? The session is saved on exit.")
	content.WriteString("\n\n")
	content.WriteString(hintStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m playerUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	storyWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - storyWidth - 6

	storyPanel := storyPanelStyle.Width(storyWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.storyViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", storyWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, metaPanel)
}
