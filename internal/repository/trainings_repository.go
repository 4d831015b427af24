package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/pkg/cleanup"
	"github.com/limbo/myniu/pkg/entity"
)

type TrainingsRepository struct {
	conn PgConnection
}

func NewTrainingsRepo(cfg DBConfig) *TrainingsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for trainingsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for trainingsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TrainingsRepository{
		conn: pool,
	}
}

func NewTrainingsRepoWithConn(conn PgConnection) *TrainingsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for trainingsRepo: " + err.Error())
	}
	return &TrainingsRepository{
		conn: conn,
	}
}

func (tr *TrainingsRepository) Create(ctx context.Context, training *entity.TrainingSession) (uuid.UUID, error) {
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO trainings (user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		training.UserID,
		training.StartedAt,
		training.DurationMin,
		training.Calories,
		training.AvgHeartRate,
		training.MaxHeartRate,
		training.TrainingEffect,
		training.Notes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating training db error: " + err.Error())
	}
	return id, nil
}

func (tr *TrainingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TrainingSession, error) {
	var t entity.TrainingSession
	t.ID = id
	row := tr.conn.QueryRow(ctx,
		`SELECT user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
		FROM trainings WHERE id = $1;`, id)
	err := row.Scan(&t.UserID, &t.StartedAt, &t.DurationMin, &t.Calories, &t.AvgHeartRate, &t.MaxHeartRate, &t.TrainingEffect, &t.Notes, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTrainingNotFound
		}
		return nil, errors.New("getting training by id error: " + err.Error())
	}
	return &t, nil
}

func (tr *TrainingsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.TrainingSession, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
		FROM trainings WHERE user_id = $1 ORDER BY started_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing trainings error: " + err.Error())
	}
	defer rows.Close()
	return scanTrainings(rows)
}

// ListAllByUser fetches the user's full history newest-first. All-time
// aggregates need every row, not a page.
func (tr *TrainingsRepository) ListAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.TrainingSession, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
		FROM trainings WHERE user_id = $1 ORDER BY started_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing all trainings error: " + err.Error())
	}
	defer rows.Close()
	return scanTrainings(rows)
}

func (tr *TrainingsRepository) ListSince(ctx context.Context, uid uuid.UUID, from time.Time) ([]entity.TrainingSession, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, user_id, started_at, duration_min, calories, avg_hr, max_hr, training_effect, notes, created_at
		FROM trainings WHERE user_id = $1 AND started_at >= $2 ORDER BY started_at DESC;`, uid, from)
	if err != nil {
		return nil, errors.New("listing trainings since date error: " + err.Error())
	}
	defer rows.Close()
	return scanTrainings(rows)
}

func (tr *TrainingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM trainings WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting training: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTrainingNotFound
	}
	return nil
}

func scanTrainings(rows pgx.Rows) ([]entity.TrainingSession, error) {
	trainings := make([]entity.TrainingSession, 0)
	for rows.Next() {
		var t entity.TrainingSession
		err := rows.Scan(&t.ID, &t.UserID, &t.StartedAt, &t.DurationMin, &t.Calories, &t.AvgHeartRate, &t.MaxHeartRate, &t.TrainingEffect, &t.Notes, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("training row parsing error: " + err.Error())
		}
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected training rows error: " + err.Error())
	}
	return trainings, nil
}
