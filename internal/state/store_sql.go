package state

import (
	"context"
	"database/sql"
	"errors"
)

const counterName = "saved_topics"

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Counter(ctx context.Context) (int64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name=$1`, counterName).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return v, err
}

func (s *SQLStore) IncrementCounter(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO counters (name,value) VALUES ($1,1)
		ON CONFLICT (name) DO UPDATE SET value=counters.value+1`, counterName)
	return err
}

func (s *SQLStore) Completions(ctx context.Context) (map[string]map[int]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT topic, group_idx, done FROM completions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]map[int]bool{}
	for rows.Next() {
		var topic string
		var group int
		var done bool
		if err := rows.Scan(&topic, &group, &done); err != nil {
			return nil, err
		}
		if out[topic] == nil {
			out[topic] = map[int]bool{}
		}
		out[topic][group] = done
	}
	return out, rows.Err()
}

func (s *SQLStore) SetCompletion(ctx context.Context, topic string, group int, done bool) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO completions (topic,group_idx,done) VALUES ($1,$2,$3)
		ON CONFLICT (topic,group_idx) DO UPDATE SET done=EXCLUDED.done`, topic, group, done)
	return err
}
