package tui

import (
	"fmt"
	"strings"

	"daylog/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService) DashboardModel {
	return DashboardModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || m.data.Latest == nil {
		return "\n  No days logged yet. Run 'daylog ingest <file.csv>' to load a log."
	}

	var sections []string

	// Top row: Latest Day and This Week side by side
	latestCard := m.renderLatestCard()
	weekCard := m.renderWeekCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, latestCard, "  ", weekCard)
	sections = append(sections, topRow)

	if len(m.data.ActivityHistory) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderRecentDays())

	help := statusStyle.Render("Press 'r' to refresh, '2' for day list, '3' for stats")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderLatestCard() string {
	d := m.data.Latest
	title := cardTitleStyle.Render("Latest Day  " + d.Date.Format("Mon Jan 02"))

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	lines := []string{
		RenderMetric("Activity Level", fmt.Sprintf("%d/100", d.ActivityLevel)),
		RenderProgressBar(float64(d.ActivityLevel)/100, 24),
		metricLabelStyle.Render("Status") + RenderStatus(d.LifestyleStatus),
		RenderMetric("Steps", fmt.Sprintf("%d", d.Steps)),
		RenderMetric("Energy/Focus", fmt.Sprintf("%d/5", d.EnergyFocus)),
		"",
		mutedStyle.Render(wrap(d.Recommendation, 36)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")
	w := m.data.Week

	corr := "N/A"
	if w.Correlation != nil {
		corr = fmt.Sprintf("%+.2f", *w.Correlation)
	}

	lines := []string{
		RenderMetric("Days logged", fmt.Sprintf("%d/7", w.DaysLogged)),
		RenderMetric("Avg Activity", fmt.Sprintf("%.1f", w.AvgActivity)),
		RenderMetric("Avg Energy", fmt.Sprintf("%.1f/5", w.AvgEnergy)),
		RenderMetric("Active+ days", fmt.Sprintf("%d", w.ActivePlusDays)),
		RenderMetric("Activity↔Energy", corr),
	}

	if m.data.SedentaryStreak >= 2 {
		lines = append(lines, "", warningStyle.Render(fmt.Sprintf("%d sedentary days in a row", m.data.SedentaryStreak)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render("Activity Level - Last 14 Days")

	graph := asciigraph.Plot(m.data.ActivityHistory,
		asciigraph.Height(8),
		asciigraph.Width(60),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentDays() string {
	title := cardTitleStyle.Render("Recent Days")

	if len(m.data.RecentDays) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No days yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %7s  %6s  %6s  %-14s",
		"Date", "Steps", "Level", "Energy", "Status"))

	var rows []string
	rows = append(rows, header)

	for i, d := range m.data.RecentDays {
		if i >= 5 {
			break
		}

		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %7d  %6d  %5d/5  %-14s",
			d.Date.Format("Jan 02"),
			d.Steps,
			d.ActivityLevel,
			d.EnergyFocus,
			d.LifestyleStatus,
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

// wrap breaks s into lines no wider than width, on spaces.
func wrap(s string, width int) string {
	if len(s) <= width {
		return s
	}

	var out, line string
	for _, word := range strings.Fields(s) {
		if line == "" {
			line = word
		} else if len(line)+1+len(word) <= width {
			line += " " + word
		} else {
			out += line + "\n"
			line = word
		}
	}
	return out + line
}
