// Package tui runs a drawing session as a full-screen Bubble Tea program.
package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/linepaint/internal/canvas"
	"github.com/san-kum/linepaint/internal/interp"
	"github.com/san-kum/linepaint/internal/session"
)

type model struct {
	session *session.Session
	input   string
	status  string
	failed  bool
	theme   int

	width  int
	height int
}

func NewApp(s *session.Session, theme string) *model {
	return &model{
		session: s,
		theme:   themeIndex(theme),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			_, size := utf8.DecodeLastRuneInString(m.input)
			m.input = m.input[:len(m.input)-size]
		}
	case tea.KeyCtrlU:
		m.input = ""
	case tea.KeyCtrlT:
		m.theme = (m.theme + 1) % len(Themes)
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m model) submit() (model, tea.Cmd) {
	r := m.session.Handle(m.input)
	m.input = ""
	if r.Class == interp.Exit {
		return m, tea.Quit
	}
	m.status = r.Message
	m.failed = r.Err != nil
	return m, nil
}

func (m model) View() string {
	t := Themes[m.theme]
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Title)
	muted := lipgloss.NewStyle().Foreground(t.Muted)
	promptStyle := lipgloss.NewStyle().Foreground(t.Prompt)
	statusStyle := lipgloss.NewStyle().Foreground(t.Status)
	if m.failed {
		statusStyle = statusStyle.Foreground(t.Error)
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border)

	c := m.session.Canvas

	var b strings.Builder
	b.WriteString(title.Render("linepaint") + muted.Render("  "+t.Name) + "\n")
	b.WriteString(frame.Render(m.renderCells(c, t)) + "\n")
	b.WriteString(promptStyle.Render("> ") + m.input + "▋\n")
	b.WriteString(statusStyle.Render(m.status) + "\n")
	b.WriteString(muted.Render("enter run  ctrl+u clear  ctrl+t theme  esc quit") + "\n")
	return b.String()
}

func (m model) renderCells(c *canvas.Canvas, t Theme) string {
	pen := lipgloss.NewStyle().Foreground(t.Pen)
	rows := c.Rows()
	for i, row := range rows {
		var sb strings.Builder
		for _, r := range row {
			if r == canvas.Blank {
				sb.WriteRune(r)
				continue
			}
			sb.WriteString(pen.Render(string(r)))
		}
		rows[i] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func Run(s *session.Session, theme string) error {
	p := tea.NewProgram(NewApp(s, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
