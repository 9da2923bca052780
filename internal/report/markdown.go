package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daylog/internal/analysis"
	"daylog/internal/record"
)

// Correlation gates, matching the original report cadence: a weekly
// window needs 3 days to quote a correlation, a monthly one needs 7.
const (
	weeklyMinCorrDays  = 3
	monthlyMinCorrDays = 7
)

// WeeklySummary renders the Markdown summary for the 7-day window
// ending at end. days must be the window's records, ascending.
func WeeklySummary(days []record.EnrichedRecord, end time.Time) string {
	start := end.AddDate(0, 0, -6)
	s := analysis.Summarize(days, start, end, weeklyMinCorrDays)

	var md []string
	md = append(md, fmt.Sprintf("# Week: %s → %s", start.Format("2006-01-02"), end.Format("2006-01-02")))
	md = append(md, "")
	md = append(md, "## Overview")
	md = append(md, overviewBullets(s, 7)...)
	md = append(md, "")
	md = append(md, trendSection(s)...)
	md = append(md, chartSection(days)...)
	md = append(md, insightsSection(days)...)

	return strings.Join(md, "\n") + "\n"
}

// MonthlySummary renders the Markdown summary for the calendar month
// containing anchor. days must be that month's records, ascending.
func MonthlySummary(days []record.EnrichedRecord, anchor time.Time) string {
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	s := analysis.Summarize(days, start, end, monthlyMinCorrDays)

	var md []string
	md = append(md, fmt.Sprintf("# Month: %s → %s", start.Format("2006-01-02"), end.Format("2006-01-02")))
	md = append(md, "")
	md = append(md, "## Overview")
	md = append(md, overviewBullets(s, end.Day())...)
	if s.BestDay != nil {
		md = append(md, fmt.Sprintf("- **Best day (Activity Level):** %s (%d)", s.BestDay.Date.Format("2006-01-02"), s.BestDay.Level))
	}
	md = append(md, "")
	md = append(md, trendSection(s)...)
	md = append(md, chartSection(days)...)
	md = append(md, insightsSection(days)...)

	return strings.Join(md, "\n") + "\n"
}

// WriteWeekly writes the weekly summary into dir and returns the path.
func WriteWeekly(dir string, days []record.EnrichedRecord, end time.Time) (string, error) {
	name := fmt.Sprintf("weekly_%s.md", end.Format("2006-01-02"))
	return writeSummary(dir, name, WeeklySummary(days, end))
}

// WriteMonthly writes the monthly summary into dir and returns the path.
func WriteMonthly(dir string, days []record.EnrichedRecord, anchor time.Time) (string, error) {
	name := fmt.Sprintf("monthly_%s.md", anchor.Format("2006-01"))
	return writeSummary(dir, name, MonthlySummary(days, anchor))
}

func writeSummary(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func overviewBullets(s analysis.PeriodSummary, daysInPeriod int) []string {
	return []string{
		fmt.Sprintf("- **Days logged:** %d/%d", s.DaysLogged, daysInPeriod),
		fmt.Sprintf("- **Avg Activity Level:** %.1f", s.AvgActivity),
		fmt.Sprintf("- **Avg Energy/Focus:** %.1f/5", s.AvgEnergy),
		fmt.Sprintf("- **Sedentary days:** %d", s.SedentaryDays),
		fmt.Sprintf("- **Active+ days:** %d", s.ActivePlusDays),
	}
}

func trendSection(s analysis.PeriodSummary) []string {
	corr := "N/A"
	if s.Correlation != nil {
		corr = fmt.Sprintf("%.2f", *s.Correlation)
	}
	return []string{
		"## Trends",
		fmt.Sprintf("- Correlation (Activity ↔ Energy): %s", corr),
		"",
	}
}

func insightsSection(days []record.EnrichedRecord) []string {
	lines := []string{"## Insights"}
	for _, ins := range analysis.GenerateInsights(days) {
		lines = append(lines, fmt.Sprintf("- **%s:** %s", ins.Title, ins.Message))
	}
	lines = append(lines, "")
	return lines
}
