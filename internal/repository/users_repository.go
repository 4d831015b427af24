package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/pkg/cleanup"
	"github.com/limbo/myniu/pkg/entity"
)

const userColumns = `id, name, password_hash, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

// Create inserts the user and fills in the generated ID and creation
// timestamp on the passed struct.
func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx,
		`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id, created_at;`,
		user.Name, user.PasswordHash)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique violation on name
			return errorvalues.ErrUserExists
		}
		return errors.New("users insert error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1;`, name)
	return scanUser(row)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	return scanUser(row)
}

// Delete cascades to the user's trainings and daily logs via the FK.
func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("users delete error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("users select error: " + err.Error())
	}
	return &user, nil
}
