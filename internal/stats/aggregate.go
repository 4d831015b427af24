// Package stats derives dashboard numbers from already-fetched record
// lists. Every function here is a pure projection of its inputs: no
// clock reads, no storage access, input order never trusted.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/myniu/pkg/entity"
)

// NeverTrained is returned by DaysSinceLastSession when no session
// exists at all. Any sane inactivity threshold compares below it.
const NeverTrained = 999

func TotalCalories(sessions []entity.TrainingSession) int {
	total := 0
	for _, s := range sessions {
		total += s.Calories
	}
	return total
}

func AverageHeartRate(sessions []entity.TrainingSession) int {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sessions {
		sum += s.AvgHeartRate
	}
	return int(math.Round(float64(sum) / float64(len(sessions))))
}

func BestTrainingEffect(sessions []entity.TrainingSession) float64 {
	best := 0.0
	for _, s := range sessions {
		if s.TrainingEffect > best {
			best = s.TrainingEffect
		}
	}
	return best
}

// DaysSinceLastSession returns whole calendar days between now and the
// most recent session. The session list is scanned for the maximum
// timestamp rather than trusting caller ordering.
func DaysSinceLastSession(sessions []entity.TrainingSession, now time.Time) int {
	if len(sessions) == 0 {
		return NeverTrained
	}
	last := sessions[0].StartedAt
	for _, s := range sessions[1:] {
		if s.StartedAt.After(last) {
			last = s.StartedAt
		}
	}
	days := int(truncateToDay(now).Sub(truncateToDay(last)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// LastNDays sorts logs ascending by date and returns at most the n
// chronologically latest ones, for trend charts.
func LastNDays(logs []entity.DailyLog, n int) []entity.DailyLog {
	sorted := make([]entity.DailyLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// ComplianceCounts counts, per habit, how many days in the given window
// met its threshold. Logs are keyed one-per-date upstream, so a day can
// never be counted twice.
func ComplianceCounts(logs []entity.DailyLog) entity.ComplianceCounts {
	var counts entity.ComplianceCounts
	for _, l := range logs {
		if readingDone(&l) {
			counts.Reading++
		}
		if kefirDone(&l) {
			counts.Kefir++
		}
		if waterDone(&l) {
			counts.Water++
		}
		if noPhoneDone(&l) {
			counts.NoPhone++
		}
	}
	return counts
}

// ComplianceRate is the percentage of logged days within the trailing
// window that were "perfect": both reading and kefir done. Days without
// a log don't count against the rate.
func ComplianceRate(logs []entity.DailyLog, now time.Time, windowDays int) int {
	from := truncateToDay(now).AddDate(0, 0, -windowDays)
	logged, perfect := 0, 0
	for _, l := range logs {
		if truncateToDay(l.Date).Before(from) {
			continue
		}
		logged++
		if readingDone(&l) && kefirDone(&l) {
			perfect++
		}
	}
	if logged == 0 {
		return 0
	}
	return perfect * 100 / logged
}

// WeeklyCalories sums session calories over the trailing 7 days.
func WeeklyCalories(sessions []entity.TrainingSession, now time.Time) int {
	from := truncateToDay(now).AddDate(0, 0, -7)
	total := 0
	for _, s := range sessions {
		if !truncateToDay(s.StartedAt).Before(from) {
			total += s.Calories
		}
	}
	return total
}

// Streak counts days satisfying the predicate, walking back from
// today. Each counted day may fall on the expected day or one day
// earlier, so a single missed day is forgiven at every step; only two
// or more missed days in a row end the streak.
func Streak(logs []entity.DailyLog, now time.Time, done func(*entity.DailyLog) bool) int {
	days := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		if done(&l) {
			days = append(days, truncateToDay(l.Date))
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	streak := 0
	expect := truncateToDay(now)
	for _, d := range days {
		if d.Equal(expect) || d.Equal(expect.AddDate(0, 0, -1)) {
			streak++
			expect = d.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}

func ReadingStreak(logs []entity.DailyLog, now time.Time) int {
	return Streak(logs, now, readingDone)
}

func KefirStreak(logs []entity.DailyLog, now time.Time) int {
	return Streak(logs, now, kefirDone)
}

func NoPhoneStreak(logs []entity.DailyLog, now time.Time) int {
	return Streak(logs, now, noPhoneDone)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
