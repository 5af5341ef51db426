package db

import (
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"

	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	"github.com/eslsoft/courseboxd/internal/core"
)

// wrapError tags unexpected storage failures with core.ErrPersistence and
// passes domain sentinels through. Ent not-found errors become core.ErrNotFound.
func wrapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case entgenerated.IsNotFound(err):
		return core.ErrNotFound
	case errors.Is(err, core.ErrNotFound),
		errors.Is(err, core.ErrSlugConflict),
		errors.Is(err, core.ErrAccountExists):
		return err
	default:
		return fmt.Errorf("%s: %w: %w", op, core.ErrPersistence, err)
	}
}

// uniqueAs maps a unique-constraint violation to sentinel. Foreign key
// failures are left alone.
func uniqueAs(err, sentinel error) error {
	if err != nil && sqlgraph.IsUniqueConstraintError(err) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return err
}

// setOrClear writes v through set, or clears the column when v is nil.
func setOrClear[B, T any](v *T, set func(T) B, clear func() B) {
	if v == nil {
		clear()
		return
	}
	set(*v)
}
