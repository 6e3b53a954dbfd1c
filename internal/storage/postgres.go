package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS sleep_entries (
	id       TEXT PRIMARY KEY,
	user_id  TEXT NOT NULL REFERENCES users(id),
	date     DATE NOT NULL,
	duration DOUBLE PRECISION NOT NULL,
	rating   INT NOT NULL,
	notes    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS diet_entries (
	id        TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL REFERENCES users(id),
	date      DATE NOT NULL,
	meal_name TEXT NOT NULL,
	notes     TEXT NOT NULL DEFAULT '',
	rating    INT NOT NULL
);
CREATE TABLE IF NOT EXISTS workout_entries (
	id        TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL REFERENCES users(id),
	date      DATE NOT NULL,
	name      TEXT NOT NULL,
	duration  DOUBLE PRECISION NOT NULL,
	intensity DOUBLE PRECISION NOT NULL,
	type      TEXT NOT NULL DEFAULT '',
	notes     TEXT NOT NULL DEFAULT '',
	rating    INT NOT NULL
);
CREATE TABLE IF NOT EXISTS goals (
	user_id            TEXT PRIMARY KEY REFERENCES users(id),
	sleep_length_goal  DOUBLE PRECISION NOT NULL,
	sleep_quality_goal DOUBLE PRECISION NOT NULL,
	intensity_goal     DOUBLE PRECISION NOT NULL,
	diet_goal          DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS feedback (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL REFERENCES users(id),
	type          TEXT NOT NULL,
	page          TEXT NOT NULL,
	message       TEXT NOT NULL,
	rating        INT,
	contact_email TEXT,
	created_at    TIMESTAMPTZ NOT NULL
);
`

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Errorf("failed to ensure schema: %v", err)
		pool.Close()
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

// --- UserRepository ---

func (p *PostgresStorage) CreateUser(ctx context.Context, user *internal.User) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.PasswordHash)
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
		return storageErr(err)
	}
	return nil
}

func (p *PostgresStorage) GetUserByID(ctx context.Context, id string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, username, password_hash FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (p *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, username, password_hash FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*internal.User, error) {
	var u internal.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &u, nil
}

// storageErr keeps raw driver errors from crossing the store boundary.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", internal.ErrStorageUnavailable, err)
}

// --- SleepRepository ---

func (p *PostgresStorage) SaveSleepEntry(ctx context.Context, entry *internal.SleepEntry) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO sleep_entries (id, user_id, date, duration, rating, notes) VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UserID, entry.Date, entry.Duration, entry.Rating, entry.Notes)
	if err != nil {
		p.logger.Errorf("failed to insert sleep entry: %v", err)
		return storageErr(err)
	}
	return nil
}

func (p *PostgresStorage) ListSleepEntries(ctx context.Context, userID string) ([]internal.SleepEntry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, duration, rating, notes FROM sleep_entries WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query sleep entries: %v", err)
		return nil, storageErr(err)
	}
	defer rows.Close()

	var entries []internal.SleepEntry
	for rows.Next() {
		var e internal.SleepEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Duration, &e.Rating, &e.Notes); err != nil {
			p.logger.Errorf("failed to scan sleep entry: %v", err)
			return nil, storageErr(err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStorage) SleepChart(ctx context.Context, userID string) ([]internal.ChartPoint, error) {
	return p.chart(ctx, `SELECT date, duration FROM sleep_entries WHERE user_id = $1 ORDER BY date`, userID)
}

// --- DietRepository ---

func (p *PostgresStorage) SaveDietEntry(ctx context.Context, entry *internal.DietEntry) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO diet_entries (id, user_id, date, meal_name, notes, rating) VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UserID, entry.Date, entry.MealName, entry.Notes, entry.Rating)
	if err != nil {
		p.logger.Errorf("failed to insert diet entry: %v", err)
		return storageErr(err)
	}
	return nil
}

func (p *PostgresStorage) ListDietEntries(ctx context.Context, userID string) ([]internal.DietEntry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, meal_name, notes, rating FROM diet_entries WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query diet entries: %v", err)
		return nil, storageErr(err)
	}
	defer rows.Close()

	var entries []internal.DietEntry
	for rows.Next() {
		var e internal.DietEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.MealName, &e.Notes, &e.Rating); err != nil {
			p.logger.Errorf("failed to scan diet entry: %v", err)
			return nil, storageErr(err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStorage) DietChart(ctx context.Context, userID string) ([]internal.ChartPoint, error) {
	return p.chart(ctx, `SELECT date, rating::double precision FROM diet_entries WHERE user_id = $1 ORDER BY date`, userID)
}

// --- WorkoutRepository ---

func (p *PostgresStorage) SaveWorkoutEntry(ctx context.Context, entry *internal.WorkoutEntry) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO workout_entries (id, user_id, date, name, duration, intensity, type, notes, rating) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.UserID, entry.Date, entry.Name, entry.Duration, entry.Intensity, entry.Type, entry.Notes, entry.Rating)
	if err != nil {
		p.logger.Errorf("failed to insert workout entry: %v", err)
		return storageErr(err)
	}
	return nil
}

func (p *PostgresStorage) ListWorkoutEntries(ctx context.Context, userID string) ([]internal.WorkoutEntry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, name, duration, intensity, type, notes, rating FROM workout_entries WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query workout entries: %v", err)
		return nil, storageErr(err)
	}
	defer rows.Close()

	var entries []internal.WorkoutEntry
	for rows.Next() {
		var e internal.WorkoutEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Name, &e.Duration, &e.Intensity, &e.Type, &e.Notes, &e.Rating); err != nil {
			p.logger.Errorf("failed to scan workout entry: %v", err)
			return nil, storageErr(err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStorage) WorkoutChart(ctx context.Context, userID string) ([]internal.ChartPoint, error) {
	return p.chart(ctx, `SELECT date, duration FROM workout_entries WHERE user_id = $1 ORDER BY date`, userID)
}

func (p *PostgresStorage) chart(ctx context.Context, query, userID string) ([]internal.ChartPoint, error) {
	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		p.logger.Errorf("failed to query chart series: %v", err)
		return nil, storageErr(err)
	}
	defer rows.Close()

	var points []internal.ChartPoint
	for rows.Next() {
		var pt internal.ChartPoint
		if err := rows.Scan(&pt.Date, &pt.Value); err != nil {
			p.logger.Errorf("failed to scan chart point: %v", err)
			return nil, storageErr(err)
		}
		points = append(points, pt)
	}
	return points, rows.Err()
}

// --- GoalRepository ---

func (p *PostgresStorage) UpsertGoal(ctx context.Context, goal *internal.Goal) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO goals (user_id, sleep_length_goal, sleep_quality_goal, intensity_goal, diet_goal)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			sleep_length_goal  = EXCLUDED.sleep_length_goal,
			sleep_quality_goal = EXCLUDED.sleep_quality_goal,
			intensity_goal     = EXCLUDED.intensity_goal,
			diet_goal          = EXCLUDED.diet_goal`,
		goal.UserID, goal.SleepLength, goal.SleepQuality, goal.Intensity, goal.Diet)
	if err != nil {
		p.logger.Errorf("failed to upsert goal: %v", err)
		return storageErr(err)
	}
	return nil
}

func (p *PostgresStorage) GetGoal(ctx context.Context, userID string) (*internal.Goal, error) {
	row := p.pool.QueryRow(ctx, `SELECT user_id, sleep_length_goal, sleep_quality_goal, intensity_goal, diet_goal FROM goals WHERE user_id = $1`, userID)
	var g internal.Goal
	if err := row.Scan(&g.UserID, &g.SleepLength, &g.SleepQuality, &g.Intensity, &g.Diet); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Errorf("failed to get goal: %v", err)
		return nil, storageErr(err)
	}
	return &g, nil
}

// --- FeedbackRepository ---

func (p *PostgresStorage) SaveFeedback(ctx context.Context, entry *internal.FeedbackEntry) error {
	var email *string
	if entry.ContactEmail != "" {
		email = &entry.ContactEmail
	}
	_, err := p.pool.Exec(ctx, `INSERT INTO feedback (id, user_id, type, page, message, rating, contact_email, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.Type, entry.Page, entry.Message, entry.Rating, email, entry.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert feedback: %v", err)
		return storageErr(err)
	}
	return nil
}

func (p *PostgresStorage) ListFeedback(ctx context.Context, userID string, limit int) ([]internal.FeedbackEntry, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, type, page, message, rating, COALESCE(contact_email, ''), created_at FROM feedback WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		p.logger.Errorf("failed to query feedback: %v", err)
		return nil, storageErr(err)
	}
	defer rows.Close()

	var entries []internal.FeedbackEntry
	for rows.Next() {
		var e internal.FeedbackEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Page, &e.Message, &e.Rating, &e.ContactEmail, &e.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan feedback: %v", err)
			return nil, storageErr(err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// --- Compile-time assertions ---
var _ UserRepository = (*PostgresStorage)(nil)
var _ SleepRepository = (*PostgresStorage)(nil)
var _ DietRepository = (*PostgresStorage)(nil)
var _ WorkoutRepository = (*PostgresStorage)(nil)
var _ GoalRepository = (*PostgresStorage)(nil)
var _ FeedbackRepository = (*PostgresStorage)(nil)
