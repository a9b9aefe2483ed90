package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/trendradar/internal/domain/theme"
	"github.com/tesso57/trendradar/internal/presentation/tui/textutil"
)

// chromeLines is the vertical space reserved for the footer.
const chromeLines = 2

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// View renders the current session.
func (m *Model) View() string {
	var body string
	switch m.session {
	case detailView:
		body = m.viewport.View()
	default:
		body = m.list.View()
	}
	return body + "\n" + m.footer()
}

func (m *Model) footer() string {
	status := fmt.Sprintf("%d themes · %d unread · filter: %s", m.stats.Total, m.stats.Unread, m.filter)
	if m.loading {
		status = m.spinner.View() + " " + status
	}

	line := footerStyle.Render(status)
	switch {
	case m.errMsg != "":
		line += "\n" + errorStyle.Render(textutil.Fit(m.errMsg, m.width))
	case m.notice != "":
		line += "\n" + noticeStyle.Render(textutil.Fit(m.notice, m.width))
	default:
		line += "\n"
	}
	return line
}

func renderDetail(d *theme.Detail, width int) string {
	if d == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s · importance %.1f · impact %.1f\n\n", d.Category, d.Importance, d.Impact)
	b.WriteString(d.Summary)
	b.WriteString("\n")

	if len(d.KeyPoints) > 0 {
		b.WriteString("\nKey points:\n")
		for _, p := range d.KeyPoints {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}

	if len(d.Articles) > 0 {
		b.WriteString("\nSources:\n")
		for _, a := range d.Articles {
			fmt.Fprintf(&b, "  - %s (%s)\n", textutil.SingleLine(a.Title), a.URL)
		}
	}

	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}
	return b.String()
}
