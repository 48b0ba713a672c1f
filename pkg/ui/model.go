package ui

import (
	"fmt"
	"strings"
	"time"

	"sqlcheck/pkg/ui/base"
	"sqlcheck/pkg/validate"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// checkRecord is one validated query kept in the session history.
type checkRecord struct {
	query   string
	outcome validate.Outcome
}

// Model represents the application state
type Model struct {
	queryEditor textarea.Model
	historyView viewport.Model
	help        help.Model
	highlighter *SQLHighlighter

	width      int
	height     int
	showHelp   bool
	hasOutcome bool

	lastQuery   string
	lastOutcome validate.Outcome
	history     []checkRecord

	lastCheckTime time.Duration
	keys          keyMap
}

func NewModel() Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your SQL query here..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	vp := viewport.New(80, 10)
	vp.Style = historyStyle

	return Model{
		queryEditor: ta,
		historyView: vp,
		help:        help.New(),
		highlighter: NewSQLHighlighter(),
		keys:        keys,
		history:     make([]checkRecord, 0),
		showHelp:    false,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Check):
			query := m.queryEditor.Value()
			if strings.TrimSpace(query) != "" {
				return m, m.checkQuery(query)
			}

		case key.Matches(msg, m.keys.Clear):
			m.queryEditor.SetValue("")
			m.hasOutcome = false

		case key.Matches(msg, m.keys.ClearHistory):
			m.history = m.history[:0]
			m.historyView.SetContent("")

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case checkResultMsg:
		m.hasOutcome = true
		m.lastQuery = msg.query
		m.lastOutcome = msg.outcome
		m.lastCheckTime = msg.duration
		m.history = append(m.history, checkRecord{query: msg.query, outcome: msg.outcome})
		m.updateHistoryDisplay()
	}

	// Update sub-components
	var cmd tea.Cmd
	m.queryEditor, cmd = m.queryEditor.Update(msg)
	cmds = append(cmds, cmd)

	m.historyView, cmd = m.historyView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sections []string

	header := m.renderHeader()
	sections = append(sections, header)

	editorSection := m.renderQueryEditor()
	sections = append(sections, editorSection)

	if m.hasOutcome {
		sections = append(sections, m.renderOutcome())
	}

	if len(m.history) > 0 {
		sections = append(sections, m.renderHistory())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.Check,
			m.keys.Clear,
			m.keys.ClearHistory,
			m.keys.Help,
			m.keys.Quit,
		},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(bgMedium).
		Render(helpText)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🔍 SQL Syntax Checker")
	badge := dialectBadgeStyle.Render("📝 mini-sql")
	counts := lipgloss.NewStyle().
		Foreground(textSecondary).
		Render(fmt.Sprintf("Checked: %d | Valid: %d",
			len(m.history), m.validCount()))

	header := lipgloss.JoinHorizontal(
		lipgloss.Left,
		title,
		"  ",
		badge,
		"  ",
		counts,
	)

	separatorWidth := base.Max(m.width-4, 0)
	separator := strings.Repeat("─", separatorWidth)
	sepStyle := lipgloss.NewStyle().
		Foreground(bgLight).
		Render(separator)

	return header + "\n" + sepStyle
}

func (m Model) renderQueryEditor() string {
	label := lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		Render("SQL Query Editor")

	editor := editorStyle.Render(m.queryEditor.View())

	return fmt.Sprintf("%s\n%s", label, editor)
}

func (m Model) renderOutcome() string {
	if m.lastOutcome.Valid {
		icon := validBadgeStyle.Render(" ✓ VALID ")
		message := lipgloss.NewStyle().
			Foreground(accentColor).
			Render(m.lastOutcome.Message)

		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1).
			Render(fmt.Sprintf("%s %s", icon, message))
	}

	icon := errorBadgeStyle.Render(fmt.Sprintf(" ⚠ %s ", strings.ToUpper(m.lastOutcome.Category.String())))
	message := lipgloss.NewStyle().
		Foreground(errorColor).
		Render(m.lastOutcome.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(0, 1).
		Render(fmt.Sprintf("%s %s", icon, message))
}

func (m Model) renderHistory() string {
	header := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render("History")

	return fmt.Sprintf("%s\n%s", header, m.historyView.View())
}

func (m Model) renderStatusBar() string {
	status := "● Ready"
	statusColor := accentColor
	if m.hasOutcome && !m.lastOutcome.Valid {
		status = "● " + m.lastOutcome.Category.String()
		statusColor = errorColor
	}

	timer := ""
	if m.lastCheckTime > 0 {
		timer = fmt.Sprintf(" | Last check: %v", m.lastCheckTime)
	}

	helpHint := " | Press Ctrl+H for help"
	content := lipgloss.NewStyle().
		Foreground(statusColor).
		Render(status) +
		lipgloss.NewStyle().
			Foreground(textMuted).
			Render(timer+helpHint)

	return statusBarStyle.
		Width(base.Max(m.width-4, 0)).
		Render(content)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	editorHeight := 6
	historyHeight := base.Max(m.height-editorHeight-12, 3)

	m.queryEditor.SetWidth(m.width - 6)
	m.historyView.Width = m.width - 6
	m.historyView.Height = historyHeight
}

func (m *Model) updateHistoryDisplay() {
	lineWidth := base.Max(m.historyView.Width-6, 20)

	lines := make([]string, 0, len(m.history))
	for _, rec := range m.history {
		query := base.TruncateString(strings.Join(strings.Fields(rec.query), " "), lineWidth)
		if rec.outcome.Valid {
			mark := lipgloss.NewStyle().Foreground(accentColor).Render("✓")
			lines = append(lines, fmt.Sprintf("%s %s", mark, m.highlighter.Highlight(query)))
		} else {
			mark := lipgloss.NewStyle().Foreground(errorColor).Render("✗")
			category := lipgloss.NewStyle().Foreground(textMuted).Render("[" + rec.outcome.Category.String() + "]")
			lines = append(lines, fmt.Sprintf("%s %s %s", mark, category, query))
		}
	}

	m.historyView.SetContent(strings.Join(lines, "\n"))
	m.historyView.GotoBottom()
}

func (m Model) validCount() int {
	count := 0
	for _, rec := range m.history {
		if rec.outcome.Valid {
			count++
		}
	}
	return count
}

type checkResultMsg struct {
	query    string
	outcome  validate.Outcome
	duration time.Duration
}

func (m Model) checkQuery(query string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		outcome := validate.Validate(query)
		duration := time.Since(start)

		return checkResultMsg{
			query:    query,
			outcome:  outcome,
			duration: duration,
		}
	}
}
