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

type DailyLogsRepository struct {
	conn PgConnection
}

func NewDailyLogsRepo(cfg DBConfig) *DailyLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dailyLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DailyLogsRepository{
		conn: pool,
	}
}

func NewDailyLogsRepoWithConn(conn PgConnection) *DailyLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyLogsRepo: " + err.Error())
	}
	return &DailyLogsRepository{
		conn: conn,
	}
}

// Upsert lazily creates the row on first write for a date. NULL patch
// fields fall through to the stored value, so a later write never
// clobbers counters it didn't touch.
func (dlr *DailyLogsRepository) Upsert(ctx context.Context, patch *DailyLogPatch) error {
	if patch == nil {
		return errors.New("patch is nil")
	}
	_, err := dlr.conn.Exec(ctx,
		`INSERT INTO daily_logs (user_id, date, reading_minutes, water_glasses, kefir_glasses, no_phone_after_21, discipline_score, mood_score, calorie_intake)
		VALUES ($1, $2, COALESCE($3, 0), COALESCE($4, 0), COALESCE($5, 0), COALESCE($6, FALSE), COALESCE($7, 0), COALESCE($8, 0), COALESCE($9, 0))
		ON CONFLICT (user_id, date) DO UPDATE SET
			reading_minutes = COALESCE($3, daily_logs.reading_minutes),
			water_glasses = COALESCE($4, daily_logs.water_glasses),
			kefir_glasses = COALESCE($5, daily_logs.kefir_glasses),
			no_phone_after_21 = COALESCE($6, daily_logs.no_phone_after_21),
			discipline_score = COALESCE($7, daily_logs.discipline_score),
			mood_score = COALESCE($8, daily_logs.mood_score),
			calorie_intake = COALESCE($9, daily_logs.calorie_intake);`,
		patch.UserID,
		patch.Date,
		patch.ReadingMinutes,
		patch.WaterGlasses,
		patch.KefirGlasses,
		patch.NoPhoneAfter21,
		patch.DisciplineScore,
		patch.MoodScore,
		patch.CalorieIntake,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("upserting daily log error: " + err.Error())
	}
	return nil
}

func (dlr *DailyLogsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyLog, error) {
	var l entity.DailyLog
	row := dlr.conn.QueryRow(ctx,
		`SELECT user_id, date, reading_minutes, water_glasses, kefir_glasses, no_phone_after_21, discipline_score, mood_score, calorie_intake
		FROM daily_logs WHERE user_id = $1 AND date = $2;`, uid, date)
	err := row.Scan(&l.UserID, &l.Date, &l.ReadingMinutes, &l.WaterGlasses, &l.KefirGlasses, &l.NoPhoneAfter21, &l.DisciplineScore, &l.MoodScore, &l.CalorieIntake)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting daily log error: " + err.Error())
	}
	return &l, nil
}

func (dlr *DailyLogsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.DailyLog, error) {
	rows, err := dlr.conn.Query(ctx,
		`SELECT user_id, date, reading_minutes, water_glasses, kefir_glasses, no_phone_after_21, discipline_score, mood_score, calorie_intake
		FROM daily_logs WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("listing daily logs error: " + err.Error())
	}
	defer rows.Close()
	return scanDailyLogs(rows)
}

func (dlr *DailyLogsRepository) ListRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error) {
	rows, err := dlr.conn.Query(ctx,
		`SELECT user_id, date, reading_minutes, water_glasses, kefir_glasses, no_phone_after_21, discipline_score, mood_score, calorie_intake
		FROM daily_logs WHERE user_id = $1 AND date >= $2 AND date <= $3;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing daily logs range error: " + err.Error())
	}
	defer rows.Close()
	return scanDailyLogs(rows)
}

func scanDailyLogs(rows pgx.Rows) ([]entity.DailyLog, error) {
	logs := make([]entity.DailyLog, 0)
	for rows.Next() {
		var l entity.DailyLog
		err := rows.Scan(&l.UserID, &l.Date, &l.ReadingMinutes, &l.WaterGlasses, &l.KefirGlasses, &l.NoPhoneAfter21, &l.DisciplineScore, &l.MoodScore, &l.CalorieIntake)
		if err != nil {
			return nil, errors.New("daily log row parsing error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected daily log rows error: " + err.Error())
	}
	return logs, nil
}
