package tui

import (
	"fmt"

	"daylog/internal/record"
	"daylog/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DaysModel is the day list screen model
type DaysModel struct {
	queryService *service.QueryService
	days         []record.EnrichedRecord
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	err          error
}

// NewDaysModel creates a new days model
func NewDaysModel(qs *service.QueryService) DaysModel {
	return DaysModel{
		queryService: qs,
		pageSize:     15,
		loading:      true,
	}
}

// Init initializes the days screen
func (m DaysModel) Init() tea.Cmd {
	return m.loadPage
}

type daysLoadedMsg struct {
	days  []record.EnrichedRecord
	total int
	err   error
}

func (m DaysModel) loadPage() tea.Msg {
	days, err := m.queryService.GetDays(m.pageSize, m.offset)
	if err != nil {
		return daysLoadedMsg{err: err}
	}

	total, err := m.queryService.CountDays()
	if err != nil {
		return daysLoadedMsg{err: err}
	}

	return daysLoadedMsg{days: days, total: total}
}

// Update handles messages
func (m DaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case daysLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.days = msg.days
		m.total = msg.total

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				// Go to previous page
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.days)-1 {
				m.cursor++
			} else if m.offset+len(m.days) < m.total {
				// Go to next page
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		case "enter":
			if len(m.days) > 0 && m.cursor < len(m.days) {
				date := m.days[m.cursor].DateKey()
				return m, func() tea.Msg {
					return OpenDayDetailMsg{Date: date}
				}
			}
		}
	}
	return m, nil
}

// View renders the day list
func (m DaysModel) View() string {
	if m.loading {
		return "\n  Loading days..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.days) == 0 {
		return "\n  No days found. Run 'daylog ingest <file.csv>' to load a log."
	}

	var sections []string

	// Title with pagination info
	startNum := m.offset + 1
	endNum := m.offset + len(m.days)
	title := cardTitleStyle.Render(fmt.Sprintf("Days (%d-%d of %d)", startNum, endNum, m.total))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %7s  %6s  %6s  %8s  %-14s",
		"Date", "Steps", "Level", "Energy", "Exercise", "Status"))
	sections = append(sections, header)

	for i, d := range m.days {
		exercise := "-"
		if d.DidExercise {
			exercise = "yes"
			if d.ExerciseMinutes != nil {
				exercise = fmt.Sprintf("%d min", *d.ExerciseMinutes)
			}
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-10s  %7d  %6d  %5d/5  %8s  %-14s",
			cursor,
			d.Date.Format("2006-01-02"),
			d.Steps,
			d.ActivityLevel,
			d.EnergyFocus,
			exercise,
			d.LifestyleStatus,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	help := statusStyle.Render("\n  enter: view details  j/k: navigate  pgup/pgdn: page  r: refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
