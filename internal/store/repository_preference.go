package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dravis-client/internal/logger"
)

type preferenceRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferenceRepository returns a SQLite-backed [PreferenceRepository].
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *preferenceRepository) GetPreference(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.GetPreference").
			Str("key", key).
			Msg("failed to query preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (p *preferenceRepository) SetPreference(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertPreferenceQuery(key, value, p.now())
	if err != nil {
		return err
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.SetPreference").
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
