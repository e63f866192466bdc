package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transbook/transbook-backend/internal/apperrors"
)

// entityDescriptor describes one owned entity kind: its table, its column
// list and how to flatten an entity into insert/update arguments. columns[0]
// must be the primary key and columns[1] the owner column; values must
// return arguments in the same order as columns.
type entityDescriptor[T any] struct {
	table   string
	columns []string
	values  func(e *T) []any
}

// ownedRepository is the single generic implementation behind every entity
// repository. Every query it issues conjoins the primary key with the owner
// column; no method takes an id without an owner.
type ownedRepository[T any] struct {
	pool *pgxpool.Pool
	desc entityDescriptor[T]
}

func (r *ownedRepository[T]) selectList() string {
	return strings.Join(r.desc.columns, ", ")
}

func (r *ownedRepository[T]) save(ctx context.Context, e *T) error {
	placeholders := make([]string, len(r.desc.columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		r.desc.table, r.selectList(), strings.Join(placeholders, ", "),
	)

	_, err := r.pool.Exec(ctx, query, r.desc.values(e)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s record violates unique constraint %s", apperrors.ErrDuplicate, r.desc.table, pgErr.ConstraintName)
		}
		return fmt.Errorf("failed to insert into %s: %w", r.desc.table, err)
	}
	return nil
}

func (r *ownedRepository[T]) findByID(ctx context.Context, id, ownerID string) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1 AND user_id = $2;",
		r.selectList(), r.desc.table,
	)

	rows, err := r.pool.Query(ctx, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by ID: %w", r.desc.table, err)
	}
	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing and foreign-owned rows both surface as not found.
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan %s row: %w", r.desc.table, err)
	}
	return entity, nil
}

func (r *ownedRepository[T]) list(ctx context.Context, ownerID string) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at DESC;",
		r.selectList(), r.desc.table,
	)

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for owner: %w", r.desc.table, err)
	}
	entities, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", r.desc.table, err)
	}
	if entities == nil {
		entities = []T{}
	}
	return entities, nil
}

func (r *ownedRepository[T]) update(ctx context.Context, e *T) error {
	vals := r.desc.values(e)

	assignments := make([]string, 0, len(r.desc.columns)-2)
	for i, col := range r.desc.columns[2:] {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+3))
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $1 AND user_id = $2;",
		r.desc.table, strings.Join(assignments, ", "),
	)

	cmdTag, err := r.pool.Exec(ctx, query, vals...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s record violates unique constraint %s", apperrors.ErrDuplicate, r.desc.table, pgErr.ConstraintName)
		}
		return fmt.Errorf("failed to update %s: %w", r.desc.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// deleteByID removes the row if the caller owns it. Zero rows affected is
// success: delete is idempotent.
func (r *ownedRepository[T]) deleteByID(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2;", r.desc.table)

	_, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.desc.table, err)
	}
	return nil
}
