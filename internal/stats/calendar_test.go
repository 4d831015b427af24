package stats_test

import (
	"testing"
	"time"

	"github.com/limbo/myniu/internal/stats"
	"github.com/limbo/myniu/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionScore(t *testing.T) {
	t.Run("nil log scores zero", func(t *testing.T) {
		assert.Equal(t, 0, stats.CompletionScore(nil))
	})
	t.Run("nothing satisfied scores zero", func(t *testing.T) {
		assert.Equal(t, 0, stats.CompletionScore(&entity.DailyLog{}))
	})
	t.Run("all four satisfied scores 100", func(t *testing.T) {
		log := &entity.DailyLog{
			ReadingMinutes: 15,
			WaterGlasses:   6,
			KefirGlasses:   1,
			NoPhoneAfter21: true,
		}
		assert.Equal(t, 100, stats.CompletionScore(log))
	})
	t.Run("two of four scores 50", func(t *testing.T) {
		log := &entity.DailyLog{ReadingMinutes: 15, KefirGlasses: 1}
		assert.Equal(t, 50, stats.CompletionScore(log))
	})
	t.Run("three of four scores 75", func(t *testing.T) {
		log := &entity.DailyLog{
			ReadingMinutes: 60,
			WaterGlasses:   6,
			NoPhoneAfter21: true,
		}
		assert.Equal(t, 75, stats.CompletionScore(log))
	})
	t.Run("water below six glasses doesn't count", func(t *testing.T) {
		log := &entity.DailyLog{WaterGlasses: 5}
		assert.Equal(t, 0, stats.CompletionScore(log))
	})
}

func TestDayActive(t *testing.T) {
	assert.False(t, stats.DayActive(nil))
	assert.False(t, stats.DayActive(&entity.DailyLog{WaterGlasses: 3}))
	assert.True(t, stats.DayActive(&entity.DailyLog{KefirGlasses: 1}))
	assert.True(t, stats.DayActive(&entity.DailyLog{NoPhoneAfter21: true}))
}

func TestMonthSummaries(t *testing.T) {
	logs := []entity.DailyLog{
		{
			Date:           time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
			ReadingMinutes: 30,
			WaterGlasses:   6,
		},
		{
			Date: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
		// Belongs to another month, must be ignored.
		{
			Date:         time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			KefirGlasses: 2,
		},
	}
	summaries := stats.MonthSummaries(logs, 2025, time.February)
	require.Len(t, summaries, 28)

	assert.True(t, summaries[2].Active)
	assert.Equal(t, 50, summaries[2].CompletionScore)

	assert.False(t, summaries[9].Active)
	assert.Equal(t, 0, summaries[9].CompletionScore)

	// A day with no log at all.
	assert.False(t, summaries[0].Active)
	assert.Equal(t, 0, summaries[0].CompletionScore)
}

func TestAchievements(t *testing.T) {
	t.Run("nil log", func(t *testing.T) {
		achievements := stats.Achievements(nil)
		require.Len(t, achievements, 4)
		for _, a := range achievements {
			assert.False(t, a.Achieved)
		}
	})
	t.Run("labels carry the day's counters", func(t *testing.T) {
		log := &entity.DailyLog{ReadingMinutes: 45, WaterGlasses: 6, KefirGlasses: 2, NoPhoneAfter21: true}
		achievements := stats.Achievements(log)
		require.Len(t, achievements, 4)
		assert.Equal(t, "Reading: 45 min", achievements[0].Label)
		assert.Equal(t, "Hydration: 6 glasses", achievements[1].Label)
		assert.Equal(t, "Kefir: 2 servings", achievements[2].Label)
		for _, a := range achievements {
			assert.True(t, a.Achieved)
		}
	})
}
