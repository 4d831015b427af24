package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/internal/repository"
	"github.com/limbo/myniu/pkg/entity"
)

type DailyLogsService struct {
	repo repository.DailyLogsRepositoryI
}

func NewDailyLogsService(logsRepo repository.DailyLogsRepositoryI) *DailyLogsService {
	if logsRepo == nil {
		log.Fatal("provided nil dailyLogsRepo")
	}
	return &DailyLogsService{
		repo: logsRepo,
	}
}

func (dls *DailyLogsService) UpsertLog(ctx context.Context, uid uuid.UUID, date time.Time, req *LogPatchRequest) (*entity.DailyLog, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	day := truncateToDay(date)
	if day.After(truncateToDay(time.Now())) {
		return nil, errorvalues.ErrFutureDate
	}
	err = dls.repo.Upsert(ctx, &repository.DailyLogPatch{
		UserID:          uid,
		Date:            day,
		ReadingMinutes:  req.ReadingMinutes,
		WaterGlasses:    req.WaterGlasses,
		KefirGlasses:    req.KefirGlasses,
		NoPhoneAfter21:  req.NoPhoneAfter21,
		DisciplineScore: req.DisciplineScore,
		MoodScore:       req.MoodScore,
		CalorieIntake:   req.CalorieIntake,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return dls.GetLog(ctx, uid, day)
}

// GetLog never reports an absent log as an error: a date with nothing
// recorded is an all-zero day.
func (dls *DailyLogsService) GetLog(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyLog, error) {
	day := truncateToDay(date)
	l, err := dls.repo.GetByDate(ctx, uid, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return &entity.DailyLog{UserID: uid, Date: day}, nil
		}
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return l, nil
}

func (dls *DailyLogsService) ListLogs(ctx context.Context, uid uuid.UUID) ([]entity.DailyLog, error) {
	logs, err := dls.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return logs, nil
}

func (dls *DailyLogsService) ListLogsRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error) {
	logs, err := dls.repo.ListRange(ctx, uid, truncateToDay(from), truncateToDay(to))
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return logs, nil
}

// AddWater adds glasses on top of whatever the day already holds.
func (dls *DailyLogsService) AddWater(ctx context.Context, uid uuid.UUID, date time.Time, glasses int) (*entity.DailyLog, error) {
	if glasses <= 0 {
		return nil, errors.New("glasses must be positive")
	}
	current, err := dls.GetLog(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	total := current.WaterGlasses + glasses
	return dls.UpsertLog(ctx, uid, date, &LogPatchRequest{WaterGlasses: &total})
}

func (dls *DailyLogsService) AddKefir(ctx context.Context, uid uuid.UUID, date time.Time, servings int) (*entity.DailyLog, error) {
	if servings <= 0 {
		return nil, errors.New("servings must be positive")
	}
	current, err := dls.GetLog(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	total := current.KefirGlasses + servings
	return dls.UpsertLog(ctx, uid, date, &LogPatchRequest{KefirGlasses: &total})
}

func (dls *DailyLogsService) LogReading(ctx context.Context, uid uuid.UUID, date time.Time, minutes int) (*entity.DailyLog, error) {
	if minutes <= 0 {
		return nil, errors.New("minutes must be positive")
	}
	current, err := dls.GetLog(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	total := current.ReadingMinutes + minutes
	return dls.UpsertLog(ctx, uid, date, &LogPatchRequest{ReadingMinutes: &total})
}

func (dls *DailyLogsService) LogNoPhone(ctx context.Context, uid uuid.UUID, date time.Time, success bool) (*entity.DailyLog, error) {
	return dls.UpsertLog(ctx, uid, date, &LogPatchRequest{NoPhoneAfter21: &success})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
