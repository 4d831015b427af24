package stats

import (
	"fmt"
	"time"

	"github.com/limbo/myniu/pkg/entity"
)

// The calendar view scores each day against four fixed checks, each
// worth an equal quarter of the day's completion score.
const calendarChecks = 4

func readingDone(log *entity.DailyLog) bool {
	return log != nil && log.ReadingMinutes > 0
}

func waterDone(log *entity.DailyLog) bool {
	return log != nil && log.WaterGlasses >= 6
}

func kefirDone(log *entity.DailyLog) bool {
	return log != nil && log.KefirGlasses > 0
}

func noPhoneDone(log *entity.DailyLog) bool {
	return log != nil && log.NoPhoneAfter21
}

// DayActive reports whether the day met at least one of the four
// checks. A nil log is an inactive day, not an error.
func DayActive(log *entity.DailyLog) bool {
	return readingDone(log) || waterDone(log) || kefirDone(log) || noPhoneDone(log)
}

// CompletionScore is the rounded percentage of the four checks the day
// satisfied: 0, 25, 50, 75 or 100. A nil log scores 0.
func CompletionScore(log *entity.DailyLog) int {
	satisfied := 0
	if readingDone(log) {
		satisfied++
	}
	if waterDone(log) {
		satisfied++
	}
	if kefirDone(log) {
		satisfied++
	}
	if noPhoneDone(log) {
		satisfied++
	}
	return satisfied * 100 / calendarChecks
}

// MonthSummaries produces one DaySummary per day of the given month.
// Days without a log come out inactive with score 0.
func MonthSummaries(logs []entity.DailyLog, year int, month time.Month) []entity.DaySummary {
	byDate := make(map[time.Time]*entity.DailyLog, len(logs))
	for i := range logs {
		byDate[truncateToDay(logs[i].Date)] = &logs[i]
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	summaries := make([]entity.DaySummary, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		log := byDate[date]
		summaries = append(summaries, entity.DaySummary{
			Date:            date,
			Active:          DayActive(log),
			CompletionScore: CompletionScore(log),
		})
	}
	return summaries
}

// Achievements breaks one day's log into the four calendar checks with
// display labels, for the day-detail panel.
func Achievements(log *entity.DailyLog) []entity.Achievement {
	reading, water, kefir := 0, 0, 0
	if log != nil {
		reading, water, kefir = log.ReadingMinutes, log.WaterGlasses, log.KefirGlasses
	}
	return []entity.Achievement{
		{ID: GoalReading, Label: fmt.Sprintf("Reading: %d min", reading), Achieved: readingDone(log)},
		{ID: GoalWater, Label: fmt.Sprintf("Hydration: %d glasses", water), Achieved: waterDone(log)},
		{ID: GoalKefir, Label: fmt.Sprintf("Kefir: %d servings", kefir), Achieved: kefirDone(log)},
		{ID: GoalNoPhone, Label: "No phone after 9pm", Achieved: noPhoneDone(log)},
	}
}
