package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/internal/repository"
	"github.com/limbo/myniu/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	userID = uuid.New()
)

func TestCreateTraining(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingsRepoWithConn(mock)
	training := entity.TrainingSession{
		UserID:         userID,
		StartedAt:      time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		DurationMin:    45,
		Calories:       450,
		AvgHeartRate:   132,
		MaxHeartRate:   165,
		TrainingEffect: 3.2,
		Notes:          "intervals",
	}
	tid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO trainings (user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(training.UserID, training.StartedAt, training.DurationMin, training.Calories,
				training.AvgHeartRate, training.MaxHeartRate, training.TrainingEffect, training.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(tid))
		id, err := repo.Create(ctx, &training)
		assert.NoError(t, err)
		assert.Equal(t, tid, id)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(training.UserID, training.StartedAt, training.DurationMin, training.Calories,
				training.AvgHeartRate, training.MaxHeartRate, training.TrainingEffect, training.Notes).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &training)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(training.UserID, training.StartedAt, training.DurationMin, training.Calories,
				training.AvgHeartRate, training.MaxHeartRate, training.TrainingEffect, training.Notes).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &training)
		assert.Error(t, err)
	})
}

func TestGetTrainingByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingsRepoWithConn(mock)
	training := entity.TrainingSession{
		ID:             uuid.New(),
		UserID:         userID,
		StartedAt:      time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		DurationMin:    45,
		Calories:       450,
		AvgHeartRate:   132,
		MaxHeartRate:   165,
		TrainingEffect: 3.2,
		Notes:          "intervals",
		CreatedAt:      time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
			FROM trainings WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(training.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "started_at", "duration_min", "calories", "avg_hr", "max_hr", "training_effect", "notes", "created_at"}).
				AddRow(training.UserID, training.StartedAt, training.DurationMin, training.Calories,
					training.AvgHeartRate, training.MaxHeartRate, training.TrainingEffect, training.Notes, training.CreatedAt),
			)
		result, err := repo.GetByID(ctx, training.ID)
		assert.NoError(t, err)
		assert.Equal(t, training, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(training.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, training.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTrainingNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(training.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, training.ID)
		assert.Error(t, err)
	})
}

func TestListTrainingsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingsRepoWithConn(mock)
	trainings := []entity.TrainingSession{
		{
			ID:        uuid.New(),
			UserID:    userID,
			StartedAt: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),
			Calories:  450,
			CreatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			StartedAt: time.Date(2025, 3, 12, 7, 30, 0, 0, time.UTC),
			Calories:  300,
			CreatedAt: time.Now(),
		},
	}
	columns := []string{"id", "user_id", "started_at", "duration_min", "calories", "avg_hr", "max_hr", "training_effect", "notes", "created_at"}
	query := regexp.QuoteMeta(`SELECT id, user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
			FROM trainings WHERE user_id = $1 ORDER BY started_at DESC LIMIT $2 OFFSET $3;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		limit := 10
		offset := 0
		rows := pgxmock.NewRows(columns)
		for _, tr := range trainings {
			rows.AddRow(tr.ID, tr.UserID, tr.StartedAt, tr.DurationMin, tr.Calories, tr.AvgHeartRate, tr.MaxHeartRate, tr.TrainingEffect, tr.Notes, tr.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(rows)
		result, err := repo.ListByUser(ctx, userID, limit, offset)
		assert.NoError(t, err)
		assert.Equal(t, trainings, result)
	})
	t.Run("used limit and offset", func(t *testing.T) {
		limit := 1
		offset := 1
		rows := pgxmock.NewRows(columns).
			AddRow(trainings[1].ID, trainings[1].UserID, trainings[1].StartedAt, trainings[1].DurationMin,
				trainings[1].Calories, trainings[1].AvgHeartRate, trainings[1].MaxHeartRate, trainings[1].TrainingEffect,
				trainings[1].Notes, trainings[1].CreatedAt)
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(rows)
		result, err := repo.ListByUser(ctx, userID, limit, offset)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, trainings[1], result[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 1, 1).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, userID, 1, 1)
		assert.Error(t, err)
	})
}

func TestListAllTrainingsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingsRepoWithConn(mock)
	trainings := []entity.TrainingSession{
		{
			ID:        uuid.New(),
			UserID:    userID,
			StartedAt: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),
			Calories:  450,
			CreatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			StartedAt: time.Date(2024, 11, 2, 7, 30, 0, 0, time.UTC),
			Calories:  300,
			CreatedAt: time.Now(),
		},
	}
	columns := []string{"id", "user_id", "started_at", "duration_min", "calories", "avg_hr", "max_hr", "training_effect", "notes", "created_at"}
	query := regexp.QuoteMeta(`SELECT id, user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
		FROM trainings WHERE user_id = $1 ORDER BY started_at DESC;`)
	ctx := context.Background()
	t.Run("returns the whole history", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, tr := range trainings {
			rows.AddRow(tr.ID, tr.UserID, tr.StartedAt, tr.DurationMin, tr.Calories, tr.AvgHeartRate, tr.MaxHeartRate, tr.TrainingEffect, tr.Notes, tr.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(rows)
		result, err := repo.ListAllByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, trainings, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListAllByUser(ctx, userID)
		assert.Error(t, err)
	})
}

func TestListTrainingsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingsRepoWithConn(mock)
	from := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	training := entity.TrainingSession{
		ID:        uuid.New(),
		UserID:    userID,
		StartedAt: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),
		Calories:  450,
		CreatedAt: time.Now(),
	}
	columns := []string{"id", "user_id", "started_at", "duration_min", "calories", "avg_hr", "max_hr", "training_effect", "notes", "created_at"}
	query := regexp.QuoteMeta(`SELECT id, user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
			FROM trainings WHERE user_id = $1 AND started_at >= $2 ORDER BY started_at DESC;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(training.ID, training.UserID, training.StartedAt, training.DurationMin, training.Calories,
				training.AvgHeartRate, training.MaxHeartRate, training.TrainingEffect, training.Notes, training.CreatedAt)
		mock.ExpectQuery(query).
			WithArgs(userID, from).
			WillReturnRows(rows)
		result, err := repo.ListSince(ctx, userID, from)
		assert.NoError(t, err)
		assert.Equal(t, []entity.TrainingSession{training}, result)
	})
	t.Run("no rows gives empty slice", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, from).
			WillReturnRows(pgxmock.NewRows(columns))
		result, err := repo.ListSince(ctx, userID, from)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, from).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListSince(ctx, userID, from)
		assert.Error(t, err)
	})
}

func TestDeleteTraining(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingsRepoWithConn(mock)
	tid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM trainings WHERE id = $1;`)
	ctx := context.Background()
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(tid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, tid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(tid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, tid)
		assert.ErrorIs(t, err, errorvalues.ErrTrainingNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(tid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, tid)
		assert.Error(t, err)
	})
}
