package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type TrainingSession struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	StartedAt      time.Time `json:"started_at"`
	DurationMin    int       `json:"duration_min"`
	Calories       int       `json:"calories"`
	AvgHeartRate   int       `json:"avg_hr"`
	MaxHeartRate   int       `json:"max_hr"`
	TrainingEffect float64   `json:"training_effect"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// DailyLog holds one day's habit counters. Date is truncated to the
// calendar day, at most one log exists per (user, date). A missing log
// for a date means "nothing recorded", all counters zero.
type DailyLog struct {
	UserID          uuid.UUID `json:"uid"`
	Date            time.Time `json:"date"`
	ReadingMinutes  int       `json:"reading_minutes"`
	WaterGlasses    int       `json:"water_glasses"`
	KefirGlasses    int       `json:"kefir_glasses"`
	NoPhoneAfter21  bool      `json:"no_phone_after_21"`
	DisciplineScore int       `json:"discipline_score"`
	MoodScore       int       `json:"mood_score"`
	CalorieIntake   int       `json:"calorie_intake"`
}

// Goal is a static habit definition. Loaded from configuration,
// never persisted.
type Goal struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Unit   string `json:"unit"`
	Target int    `json:"target"`
	Step   int    `json:"step"`
}

type GoalProgress struct {
	ID              string `json:"id"`
	Count           int    `json:"count"`
	Target          int    `json:"target"`
	ProgressPercent int    `json:"progress_percent"`
	Completed       bool   `json:"completed"`
}

type ComplianceCounts struct {
	Reading int `json:"reading"`
	Kefir   int `json:"kefir"`
	Water   int `json:"water"`
	NoPhone int `json:"no_phone"`
}

// DaySummary is one calendar cell: whether the day met at least one
// habit check and the 0-100 completion score over the four checks.
type DaySummary struct {
	Date            time.Time `json:"date"`
	Active          bool      `json:"active"`
	CompletionScore int       `json:"completion_score"`
}

type Achievement struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Achieved bool   `json:"achieved"`
}

type DashboardStats struct {
	TotalSessions      int              `json:"total"`
	TotalCalories      int              `json:"total_kcal"`
	AvgHeartRate       int              `json:"avg_hr"`
	BestEffect         float64          `json:"best_effect"`
	LastSession        *TrainingSession `json:"last,omitempty"`
	DaysIdle           int              `json:"days_idle"`
	ReadingStreak      int              `json:"reading_streak"`
	KefirStreak        int              `json:"kefir_streak"`
	NoPhoneStreak      int              `json:"no_phone_streak"`
	ComplianceRate     int              `json:"compliance"`
	WeeklyCalories     int              `json:"weekly_kcal"`
	WeeklyCaloriesGoal int              `json:"weekly_goal"`
	Goals              []GoalProgress   `json:"goals"`
	CoachMessage       string           `json:"coach_message"`
}

// TrainingDraft is the extractor's best-effort guess at session fields
// read off a watch screenshot. Zero values mean "not found".
type TrainingDraft struct {
	DurationMin    int     `json:"duration_min"`
	Calories       int     `json:"calories"`
	AvgHeartRate   int     `json:"avg_hr"`
	MaxHeartRate   int     `json:"max_hr"`
	TrainingEffect float64 `json:"training_effect"`
}
