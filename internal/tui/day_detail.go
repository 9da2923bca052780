package tui

import (
	"fmt"
	"time"

	"daylog/internal/record"
	"daylog/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DayDetailModel is the single-day detail screen model
type DayDetailModel struct {
	queryService *service.QueryService
	date         string
	day          *record.EnrichedRecord
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewDayDetailModel creates a new day detail model
func NewDayDetailModel(qs *service.QueryService, date string, width, height int) DayDetailModel {
	m := DayDetailModel{
		queryService: qs,
		date:         date,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the day detail screen
func (m DayDetailModel) Init() tea.Cmd {
	return m.loadDay
}

type dayLoadedMsg struct {
	day *record.EnrichedRecord
	err error
}

func (m DayDetailModel) loadDay() tea.Msg {
	date, err := time.Parse("2006-01-02", m.date)
	if err != nil {
		return dayLoadedMsg{err: err}
	}

	day, err := m.queryService.GetDay(date)
	if err != nil {
		return dayLoadedMsg{err: err}
	}
	return dayLoadedMsg{day: day}
}

// Update handles messages
func (m DayDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.day = msg.day
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.day != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadDay
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the day detail screen
func (m DayDetailModel) View() string {
	if m.loading {
		return "\n  Loading day..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return m.renderContent()
	}

	help := statusStyle.Render("  j/k: scroll  esc: back to day list")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), help)
}

func (m DayDetailModel) renderContent() string {
	d := m.day
	if d == nil {
		return "\n  Day not found."
	}

	var sections []string

	title := cardTitleStyle.Render(d.Date.Format("Monday, January 2 2006"))
	sections = append(sections, title)

	scoreLines := []string{
		RenderMetric("Activity Level", fmt.Sprintf("%d/100", d.ActivityLevel)),
		RenderProgressBar(float64(d.ActivityLevel)/100, 40),
		metricLabelStyle.Render("Status") + RenderStatus(d.LifestyleStatus),
		RenderMetric("Step points", fmt.Sprintf("%d/50", d.StepPoints)),
		RenderMetric("Exercise points", fmt.Sprintf("%d/50", d.ExercisePoints)),
	}
	sections = append(sections, renderCard("Score", scoreLines))

	logLines := []string{
		RenderMetric("Steps", fmt.Sprintf("%d", d.Steps)),
		RenderMetric("Energy/Focus", fmt.Sprintf("%d/5", d.EnergyFocus)),
		RenderMetric("Exercised", yesNo(d.DidExercise)),
	}
	if d.ExerciseType != nil {
		logLines = append(logLines, RenderMetric("Exercise type", string(*d.ExerciseType)))
	}
	if d.ExerciseMinutes != nil {
		logLines = append(logLines, RenderMetric("Duration", fmt.Sprintf("%d min", *d.ExerciseMinutes)))
	}
	if d.HeartRateZone != nil {
		logLines = append(logLines, RenderMetric("Effort zone", string(*d.HeartRateZone)))
	}
	sections = append(sections, renderCard("Logged", logLines))

	if d.AvgHRBPM != nil || d.ZoneMinutes != nil {
		var hrLines []string
		if d.AvgHRBPM != nil {
			hrLines = append(hrLines, RenderMetric("Avg HR", fmt.Sprintf("%.0f bpm", *d.AvgHRBPM)))
		}
		if zm := d.ZoneMinutes; zm != nil {
			hrLines = append(hrLines,
				RenderMetric("Light", fmt.Sprintf("%.0f min", zm.Light)),
				RenderMetric("Moderate", fmt.Sprintf("%.0f min", zm.Moderate)),
				RenderMetric("Intense", fmt.Sprintf("%.0f min", zm.Intense)),
				RenderMetric("Peak", fmt.Sprintf("%.0f min", zm.Peak)),
			)
		}
		sections = append(sections, renderCard("Heart Rate", hrLines))
	}

	sections = append(sections, renderCard("Recommendation", []string{wrap(d.Recommendation, 60)}))

	if d.Notes != nil && *d.Notes != "" {
		sections = append(sections, renderCard("Notes", []string{wrap(*d.Notes, 60)}))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderCard(title string, lines []string) string {
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render(title), content))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
