package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
//
//   - pgx.ErrNoRows becomes domain.ErrNotFound.
//   - *pgconn.PgError becomes *domain.StorageError with the server's
//     message, SQLSTATE code, detail and hint copied verbatim.
//   - context.DeadlineExceeded and context.Canceled pass through.
//   - Anything else (connection failures, scan errors) becomes a
//     *domain.StorageError carrying the error text.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s %v: %w", entity, id, &domain.StorageError{
			Message: pgErr.Message,
			Code:    pgErr.Code,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
		})
	}

	// Already mapped further down the stack.
	if domain.Kind(err) != "Internal" {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	return fmt.Errorf("%s %v: %w", entity, id, &domain.StorageError{Message: err.Error()})
}
