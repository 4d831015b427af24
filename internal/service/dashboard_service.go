package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/internal/repository"
	"github.com/limbo/myniu/internal/stats"
	"github.com/limbo/myniu/pkg/entity"
)

const (
	chartTrainingPoints  = 10
	chartDailyPoints     = 7
	complianceWindowDays = 7
)

// DashboardService fetches the record lists and projects them through
// the stats package. All derivation is pure; this service only does the
// I/O around it.
type DashboardService struct {
	trainingsRepo repository.TrainingsRepositoryI
	logsRepo      repository.DailyLogsRepositoryI
	rng           *rand.Rand
}

func NewDashboardService(trainingsRepo repository.TrainingsRepositoryI, logsRepo repository.DailyLogsRepositoryI, rng *rand.Rand) *DashboardService {
	if trainingsRepo == nil || logsRepo == nil {
		log.Fatal("on dashboard service provided nil repos")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DashboardService{
		trainingsRepo: trainingsRepo,
		logsRepo:      logsRepo,
		rng:           rng,
	}
}

func (ds *DashboardService) GetDashboard(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.DashboardStats, error) {
	// All-time totals aggregate over every session, never a page
	sessions, err := ds.trainingsRepo.ListAllByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7)
	weekSessions, err := ds.trainingsRepo.ListSince(ctx, uid, weekStart)
	if err != nil {
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	logs, err := ds.logsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}

	var today *entity.DailyLog
	todayLog, err := ds.logsRepo.GetByDate(ctx, uid, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	switch {
	case err == nil:
		today = todayLog
	case errors.Is(err, errorvalues.ErrLogNotFound):
		// no log yet today, evaluate goals against zeroes
	default:
		return nil, errors.New("daily logs repository error: " + err.Error())
	}

	result := &entity.DashboardStats{
		TotalSessions:      len(sessions),
		TotalCalories:      stats.TotalCalories(sessions),
		AvgHeartRate:       stats.AverageHeartRate(sessions),
		BestEffect:         stats.BestTrainingEffect(sessions),
		DaysIdle:           stats.DaysSinceLastSession(sessions, now),
		ReadingStreak:      stats.ReadingStreak(logs, now),
		KefirStreak:        stats.KefirStreak(logs, now),
		NoPhoneStreak:      stats.NoPhoneStreak(logs, now),
		ComplianceRate:     stats.ComplianceRate(logs, now, complianceWindowDays),
		WeeklyCalories:     stats.WeeklyCalories(weekSessions, now),
		WeeklyCaloriesGoal: stats.WeeklyCaloriesGoal,
		Goals:              stats.EvaluateGoals(today, stats.GoalTable()),
		CoachMessage:       stats.CoachMessage(ds.rng),
	}
	if len(sessions) > 0 {
		// repo returns newest-first
		result.LastSession = &sessions[0]
	}
	return result, nil
}

func (ds *DashboardService) GetCalendarMonth(ctx context.Context, uid uuid.UUID, year int, month time.Month) ([]entity.DaySummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	logs, err := ds.logsRepo.ListRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return stats.MonthSummaries(logs, year, month), nil
}

func (ds *DashboardService) GetDayDetail(ctx context.Context, uid uuid.UUID, date time.Time) (*DayDetail, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	l, err := ds.logsRepo.GetByDate(ctx, uid, day)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrLogNotFound) {
			return nil, errors.New("daily logs repository error: " + err.Error())
		}
		l = &entity.DailyLog{UserID: uid, Date: day}
	}
	// The detail panel shows only what was actually earned that day.
	achieved := make([]entity.Achievement, 0, 4)
	for _, a := range stats.Achievements(l) {
		if a.Achieved {
			achieved = append(achieved, a)
		}
	}
	return &DayDetail{
		Log:             l,
		CompletionScore: stats.CompletionScore(l),
		Achievements:    achieved,
	}, nil
}

func (ds *DashboardService) GetCharts(ctx context.Context, uid uuid.UUID, now time.Time) (*ChartsData, error) {
	sessions, err := ds.trainingsRepo.ListByUser(ctx, uid, chartTrainingPoints, 0)
	if err != nil {
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	// newest-first from the repo, charts want chronological order
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	logs, err := ds.logsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	lastWeek := stats.LastNDays(logs, chartDailyPoints)
	return &ChartsData{
		Trainings:  sessions,
		Daily:      lastWeek,
		Compliance: stats.ComplianceCounts(lastWeek),
	}, nil
}
