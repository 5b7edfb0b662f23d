package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

// CreateStats inserts the zero record; an existing record is left untouched.
func (s *StatsR) CreateStats(ctx context.Context, userID string) error {
	query := `INSERT INTO user_stats (user_id, last_updated) VALUES ($1, NOW())
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to create stats for user %s: %w", userID, err)
	}

	return nil
}

func (s *StatsR) StatsOrCreate(ctx context.Context, userID string) (models.UserStats, error) {
	if err := s.CreateStats(ctx, userID); err != nil {
		return models.UserStats{}, err
	}

	query := `SELECT user_id, streak_days, total_points, words_learned, quizzes_taken, last_updated
		FROM user_stats
		WHERE user_id = $1`

	var stats models.UserStats
	if err := s.db.GetContext(ctx, &stats, query, userID); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to get stats for user %s: %w", userID, err)
	}

	return stats, nil
}

// IncrementStat adds delta in a single statement, so concurrent increments
// never lose updates.
func (s *StatsR) IncrementStat(ctx context.Context, userID, name string, delta int64) error {
	if !isStatName(name) {
		return fmt.Errorf("unknown stat %q: %w", name, common.ErrValidation)
	}

	query := fmt.Sprintf(`INSERT INTO user_stats (user_id, %[1]s, last_updated) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			%[1]s = user_stats.%[1]s + EXCLUDED.%[1]s,
			last_updated = NOW()`, name)

	if _, err := s.db.ExecContext(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("failed to increment %s for user %s: %w", name, userID, err)
	}

	return nil
}

// UpdateStats overwrites the given counters and keeps the others.
func (s *StatsR) UpdateStats(ctx context.Context, userID string, fields map[string]int64) error {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if !isStatName(name) {
			return fmt.Errorf("unknown stat %q: %w", name, common.ErrValidation)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	args := []any{userID}
	placeholders := make([]string, 0, len(names))
	sets := make([]string, 0, len(names))
	for i, name := range names {
		args = append(args, fields[name])
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		sets = append(sets, fmt.Sprintf("%[1]s = EXCLUDED.%[1]s", name))
	}

	query := fmt.Sprintf(`INSERT INTO user_stats (user_id, %s, last_updated) VALUES ($1, %s, NOW())
		ON CONFLICT (user_id) DO UPDATE SET %s, last_updated = NOW()`,
		strings.Join(names, ", "), strings.Join(placeholders, ", "), strings.Join(sets, ", "))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update stats for user %s: %w", userID, err)
	}

	return nil
}
