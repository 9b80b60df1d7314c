// Package record implements a table-agnostic row store used by the admin
// CRUD dispatcher. SQL is built with squirrel; every statement is a single
// round trip and writes return the affected row via RETURNING.
package record

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ryankelly77/raptor-portal-sub000/internal/adapter/postgres"
	"github.com/ryankelly77/raptor-portal-sub000/internal/domain"
)

// Store provides generic row persistence backed by PostgreSQL.
type Store struct {
	db postgres.Querier
	sb squirrel.StatementBuilderType
}

// New creates a store. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Store {
	return &Store{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns one row by id or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, table string, id domain.ID) (domain.Record, error) {
	query, args, err := s.sb.Select("*").From(table).Where(squirrel.Eq{"id": id.Value()}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}
	return s.queryOne(ctx, table, id, query, args)
}

// List returns the rows matching every filter (equality, nil means IS NULL).
func (s *Store) List(ctx context.Context, table string, q domain.ListQuery) ([]domain.Record, error) {
	sel := s.sb.Select("*").From(table)
	if len(q.Filters) > 0 {
		eq := make(squirrel.Eq, len(q.Filters))
		for k, v := range q.Filters {
			eq[k] = normalizeValue(v)
		}
		sel = sel.Where(eq)
	}
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		sel = sel.OrderBy(pgx.Identifier{q.OrderBy}.Sanitize()+" "+dir, "id "+dir)
	}
	if q.Limit > 0 {
		sel = sel.Limit(q.Limit)
	}
	if q.Offset > 0 {
		sel = sel.Offset(q.Offset)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, s.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, "list")
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, postgres.MapError(err, table, "list")
	}

	out := make([]domain.Record, len(recs))
	for i, r := range recs {
		out[i] = toRecord(r)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert writes one row and returns it as stored, including server defaults.
func (s *Store) Insert(ctx context.Context, table string, fields domain.Record) (domain.Record, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("insert %s: no fields", table)
	}
	query, args, err := s.sb.Insert(table).SetMap(normalizeMap(fields)).Suffix("RETURNING *").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", table, err)
	}
	return s.queryOne(ctx, table, "new", query, args)
}

// Update changes the given columns of one row and returns the row as stored.
// Returns domain.ErrNotFound if no row has the id.
func (s *Store) Update(ctx context.Context, table string, id domain.ID, fields domain.Record) (domain.Record, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("update %s: no fields", table)
	}
	query, args, err := s.sb.Update(table).
		SetMap(normalizeMap(fields)).
		Where(squirrel.Eq{"id": id.Value()}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", table, err)
	}
	return s.queryOne(ctx, table, id, query, args)
}

// Delete physically removes one row. Returns domain.ErrNotFound if absent.
func (s *Store) Delete(ctx context.Context, table string, id domain.ID) error {
	query, args, err := s.sb.Delete(table).Where(squirrel.Eq{"id": id.Value()}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, s.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, table, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *Store) queryOne(ctx context.Context, table string, id any, query string, args []any) (domain.Record, error) {
	rows, err := postgres.QuerierFromCtx(ctx, s.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	return toRecord(rec), nil
}

// toRecord converts driver representations into JSON-friendly values.
func toRecord(m map[string]any) domain.Record {
	out := make(domain.Record, len(m))
	for k, v := range m {
		if b, ok := v.([16]byte); ok {
			out[k] = uuid.UUID(b)
			continue
		}
		out[k] = v
	}
	return out
}

func normalizeMap(m domain.Record) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

// normalizeValue turns JSON-decoded numbers into the narrowest Go type pgx
// can encode for integer and floating columns alike.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case domain.ID:
		return x.Value()
	}
	return v
}
