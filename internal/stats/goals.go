package stats

import (
	"fmt"
	"math"

	"github.com/limbo/myniu/pkg/entity"
)

// WeeklyCaloriesGoal is the weekly calorie-burn target. The dashboard
// shows it next to the trailing-week sum and the calories goal entry
// uses it as its target, so the two cannot drift apart.
const WeeklyCaloriesGoal = 1500

const (
	GoalReading    = "reading"
	GoalKefir      = "kefir"
	GoalWater      = "water"
	GoalDiscipline = "discipline"
	GoalNoPhone    = "no-phone"
	GoalCalories   = "calories"
)

// GoalTable returns the fixed habit goal definitions. A non-positive
// target is a configuration bug, so loading panics on it.
func GoalTable() []entity.Goal {
	goals := []entity.Goal{
		{ID: GoalReading, Label: "Reading", Unit: "min", Target: 60, Step: 15},
		{ID: GoalKefir, Label: "Kefir", Unit: "servings", Target: 2, Step: 1},
		{ID: GoalWater, Label: "Hydration", Unit: "glasses", Target: 6, Step: 1},
		{ID: GoalDiscipline, Label: "Discipline", Unit: "pts", Target: 100, Step: 10},
		{ID: GoalNoPhone, Label: "No phone after 9pm", Unit: "", Target: 1, Step: 1},
		{ID: GoalCalories, Label: "Calories", Unit: "kcal", Target: WeeklyCaloriesGoal, Step: 100},
	}
	for _, g := range goals {
		if g.Target <= 0 {
			panic(fmt.Sprintf("goal %q has non-positive target %d", g.ID, g.Target))
		}
	}
	return goals
}

// EvaluateGoals projects one day's log onto the goal table. A nil log
// stands for a day with nothing recorded and yields zero progress
// everywhere.
func EvaluateGoals(log *entity.DailyLog, goals []entity.Goal) []entity.GoalProgress {
	progress := make([]entity.GoalProgress, 0, len(goals))
	for _, g := range goals {
		count := goalCount(log, g.ID)
		progress = append(progress, entity.GoalProgress{
			ID:              g.ID,
			Count:           count,
			Target:          g.Target,
			ProgressPercent: progressPercent(count, g.Target),
			Completed:       count >= g.Target,
		})
	}
	return progress
}

// progressPercent clamps to [0, 100]; overshooting the target is still
// just 100. The boolean no-phone goal has count 0/1 and target 1, so it
// comes out as exactly 0 or 100 with no interpolation.
func progressPercent(count, target int) int {
	if count <= 0 {
		return 0
	}
	pct := int(math.Round(float64(count) / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

func goalCount(log *entity.DailyLog, goalID string) int {
	if log == nil {
		return 0
	}
	switch goalID {
	case GoalReading:
		return log.ReadingMinutes
	case GoalKefir:
		return log.KefirGlasses
	case GoalWater:
		return log.WaterGlasses
	case GoalDiscipline:
		return log.DisciplineScore
	case GoalNoPhone:
		if log.NoPhoneAfter21 {
			return 1
		}
		return 0
	case GoalCalories:
		return log.CalorieIntake
	default:
		return 0
	}
}
