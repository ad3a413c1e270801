package tui

import "github.com/charmbracelet/lipgloss"

// Apache feather red and PHP indigo, with neutral greys for body text.
var (
	apacheRed  = lipgloss.Color("#C2185B")
	phpIndigo  = lipgloss.Color("#777BB4")
	mysqlTeal  = lipgloss.Color("#00758F")
	amber      = lipgloss.Color("#E0A800")
	alertRed   = lipgloss.Color("#D32F2F")
	slate      = lipgloss.Color("#8A8F98")
	lightSlate = lipgloss.Color("#DADDE1")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(apacheRed).MarginBottom(1)
	leadStyle    = lipgloss.NewStyle().Foreground(phpIndigo).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(phpIndigo).MarginTop(1)

	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(apacheRed)
	plainStyle  = lipgloss.NewStyle().Foreground(lightSlate)
	dimStyle    = lipgloss.NewStyle().Foreground(slate)
	hintStyle   = dimStyle.MarginTop(1)

	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(mysqlTeal)
	warnStyle = lipgloss.NewStyle().Foreground(amber)
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(alertRed)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(apacheRed).
			Padding(0, 1)
)

var (
	cursorMark = activeStyle.Render("›")
	boxOn      = activeStyle.Render("[x]")
	boxOff     = plainStyle.Render("[ ]")
	dotOn      = activeStyle.Render("(•)")
	dotOff     = plainStyle.Render("( )")
)

// renderButtons draws a row of buttons, framing the one under the cursor.
func renderButtons(labels []string, cursor int) string {
	parts := []string{"  "}
	for i, label := range labels {
		if i == cursor {
			parts = append(parts, buttonStyle.Render(activeStyle.Render(label)))
		} else {
			parts = append(parts, plainStyle.Render(" ["+label+"] "))
		}
		parts = append(parts, "  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
