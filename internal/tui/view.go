package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	countStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	progressStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	activeLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	toggleOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	toggleOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		labelStyle.Render(m.view.Label),
		countStyle.Render(strconv.Itoa(m.view.Count)),
		m.bar.ViewAs(m.view.Fill),
		progressStyle.Render(m.view.Progress),
		"",
		m.renderLabels(),
		m.renderCards(),
		m.renderSettings(),
	}
	if m.editing {
		sections = append(sections, m.target.View())
		if m.inputErr != "" {
			sections = append(sections, errorStyle.Render(m.inputErr))
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	helpLine := footerStyle.Render(m.help.View(m.keys))
	if m.width == 0 || m.height == 0 {
		return content + "\n" + helpLine
	}
	bodyHeight := m.height - lipgloss.Height(helpLine)
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpLine)
	return body + "\n" + footer
}

func (m *Model) renderLabels() string {
	if len(m.view.Labels) == 0 {
		return ""
	}
	width := 0
	for _, c := range m.view.Labels {
		if w := runewidth.StringWidth(c.Label); w > width {
			width = w
		}
	}
	buttons := make([]string, 0, len(m.view.Labels))
	for i, c := range m.view.Labels {
		text := labelButtonText(i, c.Label, width)
		if c.Active {
			buttons = append(buttons, activeLabelStyle.Render(text))
		} else {
			buttons = append(buttons, inactiveLabelStyle.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// labelButtonText centers the label inside width display columns.
func labelButtonText(i int, label string, width int) string {
	pad := width - runewidth.StringWidth(label)
	left := pad / 2
	centered := strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
	if i < 9 {
		return strconv.Itoa(i+1) + " " + centered
	}
	return "  " + centered
}

func (m *Model) renderCards() string {
	cards := []string{
		renderCard("Today", m.view.Today),
		renderCard("Week", m.view.Week),
		renderCard("Total", m.view.Total),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(title string, value int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(strconv.Itoa(value)),
	)
	return cardStyle.Width(12).Align(lipgloss.Center).Render(body)
}

func (m *Model) renderSettings() string {
	return strings.Join([]string{
		fmt.Sprintf("target %d", m.view.Target),
		renderToggle("sound", m.view.Sound),
		renderToggle("vibration", m.view.Vibration),
	}, "   ")
}

func renderToggle(name string, on bool) string {
	if on {
		return toggleOnStyle.Render("[x] " + name)
	}
	return toggleOffStyle.Render("[ ] " + name)
}
