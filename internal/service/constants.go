package service

const (
	// Chart windows
	ChartDays = 14 // dashboard activity history

	// Pagination limits
	RecentDaysLimit = 10

	// Correlation gates: short windows produce noise, not trends.
	WeeklyMinCorrDays  = 3
	MonthlyMinCorrDays = 7

	// Days of history fetched to build trend context for one record.
	TrendLookbackDays = 7

	// Period stats depth
	DefaultWeeklyPeriods  = 12
	DefaultMonthlyPeriods = 6
)
