package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/myniu/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TrainingsRepositoryI interface {
	// Inserts new training session, returns assigned id. StartedAt, UserID
	// and the metric fields are necessary
	Create(ctx context.Context, training *entity.TrainingSession) (uuid.UUID, error)
	// Searches training with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TrainingSession, error)
	// Lists user's trainings newest-first with pagination params
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.TrainingSession, error)
	// Lists user's whole training history newest-first
	ListAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.TrainingSession, error)
	// Lists user's trainings started at or after from
	ListSince(ctx context.Context, uid uuid.UUID, from time.Time) ([]entity.TrainingSession, error)
	// Deletes training with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type DailyLogsRepositoryI interface {
	// Inserts or partially merges a log for (user, date). Nil fields in
	// the patch leave the stored values untouched
	Upsert(ctx context.Context, patch *DailyLogPatch) error
	// Returns log for a date, ErrLogNotFound when nothing was recorded
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyLog, error)
	// Lists all of user's logs
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.DailyLog, error)
	// Lists user's logs with date in [from, to]
	ListRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error)
}

// DailyLogPatch is a partial daily log write: nil fields are "not
// touched" and keep whatever the row already holds.
type DailyLogPatch struct {
	UserID          uuid.UUID
	Date            time.Time
	ReadingMinutes  *int
	WaterGlasses    *int
	KefirGlasses    *int
	NoPhoneAfter21  *bool
	DisciplineScore *int
	MoodScore       *int
	CalorieIntake   *int
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
