package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// RecordClassification stores a successful classification in one transaction:
// the genre group, the pass flag, any descriptive fields, and an audit entry.
// A retry after the pass flag is already set writes nothing.
func (s *Store) RecordClassification(ctx context.Context, trackID int64, c Classification, pass Pass, fields TrackFields) error {
	column, err := pass.column()
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx txExecer) error {
		done, err := passFlag(ctx, tx, trackID, column)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		now := timestamp()
		sets := []string{
			"genre_parent = ?", "genre_sub = ?", "genre_source = ?",
			"genre_confidence = ?", "genre_raw = ?", column + " = 1", "updated_at = ?",
		}
		args := []any{c.Genre.Parent, c.Genre.Sub, string(c.Source), c.Confidence, c.RawLabel, now}
		for _, a := range fields.assignments() {
			sets = append(sets, a.column+" = ?")
			args = append(args, a.value)
		}
		args = append(args, trackID)
		if _, err := tx.ExecContext(ctx,
			`UPDATE tracks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
		); err != nil {
			return fmt.Errorf("update classification: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO classification_log (track_id, pass_num, genre_parent, genre_sub, confidence, raw_label, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			trackID, int(pass), c.Genre.Parent, c.Genre.Sub, c.Confidence, c.RawLabel, now,
		); err != nil {
			return fmt.Errorf("insert classification log: %w", err)
		}
		return nil
	})
}

// MarkPassAttempted sets the pass flag without touching classification.
func (s *Store) MarkPassAttempted(ctx context.Context, trackID int64, pass Pass) error {
	column, err := pass.column()
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx txExecer) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE tracks SET `+column+` = 1, updated_at = ? WHERE id = ?`, timestamp(), trackID,
		)
		if err != nil {
			return fmt.Errorf("mark pass attempted: %w", err)
		}
		return requireAffected(res, trackID)
	})
}

// UpdateDescriptiveFields writes the non-empty descriptive fields. Genre and
// pass state are out of reach of this method.
func (s *Store) UpdateDescriptiveFields(ctx context.Context, trackID int64, fields TrackFields) error {
	assignments := fields.assignments()
	if len(assignments) == 0 {
		return nil
	}
	sets := make([]string, 0, len(assignments)+1)
	args := make([]any, 0, len(assignments)+2)
	for _, a := range assignments {
		sets = append(sets, a.column+" = ?")
		args = append(args, a.value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, timestamp(), trackID)

	return s.withTx(ctx, func(tx txExecer) error {
		res, err := tx.ExecContext(ctx, `UPDATE tracks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return fmt.Errorf("update descriptive fields: %w", err)
		}
		return requireAffected(res, trackID)
	})
}

func passFlag(ctx context.Context, tx txExecer, trackID int64, column string) (bool, error) {
	var done int
	err := tx.QueryRowContext(ctx, `SELECT `+column+` FROM tracks WHERE id = ?`, trackID).Scan(&done)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: id %d", ErrTrackNotFound, trackID)
	}
	if err != nil {
		return false, fmt.Errorf("read pass flag: %w", err)
	}
	return done != 0, nil
}

func requireAffected(res sql.Result, trackID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrTrackNotFound, trackID)
	}
	return nil
}
