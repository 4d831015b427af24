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

type TrainingsService struct {
	repo repository.TrainingsRepositoryI
}

func NewTrainingsService(trainingsRepo repository.TrainingsRepositoryI) *TrainingsService {
	if trainingsRepo == nil {
		log.Fatal("provided nil trainingsRepo")
	}
	return &TrainingsService{
		repo: trainingsRepo,
	}
}

func (ts *TrainingsService) CreateTraining(ctx context.Context, uid uuid.UUID, req *CreateTrainingRequest) (*entity.TrainingSession, error) {
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
	if req.StartedAt.After(time.Now()) {
		return nil, errorvalues.ErrFutureDate
	}
	id, err := ts.repo.Create(ctx, &entity.TrainingSession{
		UserID:         uid,
		StartedAt:      req.StartedAt,
		DurationMin:    req.DurationMin,
		Calories:       req.Calories,
		AvgHeartRate:   req.AvgHeartRate,
		MaxHeartRate:   req.MaxHeartRate,
		TrainingEffect: req.TrainingEffect,
		Notes:          req.Notes,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	training, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTrainingNotFound) {
			return nil, err
		}
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	return training, nil
}

func (ts *TrainingsService) ListTrainings(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.TrainingSession, error) {
	trainings, err := ts.repo.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	return trainings, nil
}

func (ts *TrainingsService) GetTraining(ctx context.Context, trainingID, userID uuid.UUID) (*entity.TrainingSession, error) {
	training, err := ts.repo.GetByID(ctx, trainingID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTrainingNotFound) {
			return nil, err
		}
		return nil, errors.New("trainings repository error: " + err.Error())
	}
	if training.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return training, nil
}

func (ts *TrainingsService) DeleteTraining(ctx context.Context, trainingID, userID uuid.UUID) error {
	training, err := ts.repo.GetByID(ctx, trainingID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTrainingNotFound) {
			return err
		}
		return errors.New("trainings repository error: " + err.Error())
	}
	if training.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = ts.repo.Delete(ctx, trainingID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTrainingNotFound) {
			return err
		}
		return errors.New("trainings repository error: " + err.Error())
	}
	return nil
}
