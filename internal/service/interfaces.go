package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/myniu/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateTrainingRequest struct {
	StartedAt      time.Time `validate:"required"`
	DurationMin    int       `validate:"required,gt=0,lte=300"`
	Calories       int       `validate:"gte=0,lte=10000"`
	AvgHeartRate   int       `validate:"required,gt=0,lte=220"`
	MaxHeartRate   int       `validate:"required,gt=0,lte=220,gtefield=AvgHeartRate"`
	TrainingEffect float64   `validate:"gte=0,lte=5"`
	Notes          string    `validate:"max=1000"`
}

// LogPatchRequest is a partial daily log update: nil means "leave the
// stored value alone".
type LogPatchRequest struct {
	ReadingMinutes  *int  `validate:"omitempty,gte=0,lte=999"`
	WaterGlasses    *int  `validate:"omitempty,gte=0,lte=100"`
	KefirGlasses    *int  `validate:"omitempty,gte=0,lte=500"`
	NoPhoneAfter21  *bool `validate:"-"`
	DisciplineScore *int  `validate:"omitempty,gte=0"`
	MoodScore       *int  `validate:"omitempty,gte=0,lte=10"`
	CalorieIntake   *int  `validate:"omitempty,gte=0,lte=10000"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type TrainingsServiceI interface {
	// Validates and stores a new session, returns it with assigned ID
	CreateTraining(ctx context.Context, uid uuid.UUID, req *CreateTrainingRequest) (*entity.TrainingSession, error)
	// Lists user's sessions newest-first
	ListTrainings(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.TrainingSession, error)
	GetTraining(ctx context.Context, trainingID, userID uuid.UUID) (*entity.TrainingSession, error)
	// Deletes user's own session
	DeleteTraining(ctx context.Context, trainingID, userID uuid.UUID) error
}

type DailyLogsServiceI interface {
	// Merges the patch into the log for date, creating the row lazily
	UpsertLog(ctx context.Context, uid uuid.UUID, date time.Time, req *LogPatchRequest) (*entity.DailyLog, error)
	// Returns the log for date; an absent log comes back as an all-zero
	// log for that date, never an error
	GetLog(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyLog, error)
	ListLogs(ctx context.Context, uid uuid.UUID) ([]entity.DailyLog, error)
	ListLogsRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error)
	// Quick-log helpers for the dashboard buttons
	AddWater(ctx context.Context, uid uuid.UUID, date time.Time, glasses int) (*entity.DailyLog, error)
	AddKefir(ctx context.Context, uid uuid.UUID, date time.Time, servings int) (*entity.DailyLog, error)
	LogReading(ctx context.Context, uid uuid.UUID, date time.Time, minutes int) (*entity.DailyLog, error)
	LogNoPhone(ctx context.Context, uid uuid.UUID, date time.Time, success bool) (*entity.DailyLog, error)
}

type DashboardServiceI interface {
	GetDashboard(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.DashboardStats, error)
	GetCalendarMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month) ([]entity.DaySummary, error)
	GetDayDetail(ctx context.Context, uid uuid.UUID, date time.Time) (*DayDetail, error)
	GetCharts(ctx context.Context, uid uuid.UUID, now time.Time) (*ChartsData, error)
}

type DayDetail struct {
	Log             *entity.DailyLog     `json:"log"`
	CompletionScore int                  `json:"completion_score"`
	Achievements    []entity.Achievement `json:"achievements"`
}

type ChartsData struct {
	// Training points ascending by start time, at most the last 10
	Trainings []entity.TrainingSession `json:"trainings"`
	// Daily logs ascending by date, at most the last 7
	Daily      []entity.DailyLog       `json:"daily"`
	Compliance entity.ComplianceCounts `json:"compliance"`
}
