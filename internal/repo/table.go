package repo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Schema describes how one trip-owned entity maps onto its table.
type Schema[T any] struct {
	// Table is the SQL table name.
	Table string
	// Columns lists every selected column in the order Scan expects them.
	// The first column must be the primary key "id".
	Columns []string
	// Writable lists the columns accepted by Insert and by Update patches.
	Writable []string
	// OrderBy is the natural order column used when a query names none.
	OrderBy string
	// Touch is true when the table has an updated_at column to bump on update.
	Touch bool
	// Values returns the insert values of an entity, keyed by column.
	Values func(T) map[string]any
	// Scan maps one row into an entity.
	Scan func(scanner) (T, error)
}

// Table is the Postgres record store for one entity type. It implements the
// generic query interface: equality filters, order-by, range slice, count,
// insert-returning, update-by-id and delete-by-id.
type Table[T any] struct {
	db     db
	schema Schema[T]
	cols   string
}

// NewTable constructs a Table backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTable[T any](db db, schema Schema[T]) *Table[T] {
	return &Table[T]{db: db, schema: schema, cols: strings.Join(schema.Columns, ", ")}
}

// Name returns the table name.
func (t *Table[T]) Name() string { return t.schema.Table }

// Select returns the rows matching q and the total number of rows matching
// q's filters, ignoring its range.
func (t *Table[T]) Select(ctx context.Context, q domain.Query) ([]T, int64, error) {
	op := t.op("Select")

	where, args, err := t.where(q.Eq)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	order, err := t.order(q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	countSQL := `SELECT count(*) FROM ` + t.schema.Table + where
	if err := t.db.QueryRow(ctx, countSQL, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	sql := `SELECT ` + t.cols + ` FROM ` + t.schema.Table + where + ` ORDER BY ` + order
	if q.Limit > 0 {
		sql += ` LIMIT @limit`
		args["limit"] = q.Limit
	}
	if q.Offset > 0 {
		sql += ` OFFSET @offset`
		args["offset"] = q.Offset
	}

	rows, err := t.db.Query(ctx, sql, args)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := t.schema.Scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: rows: %w", op, err)
	}
	return items, total, nil
}

// Get retrieves one row by primary key.
// Returns domain.ErrNotFound if no row with that ID exists.
func (t *Table[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	sql := `SELECT ` + t.cols + ` FROM ` + t.schema.Table + ` WHERE id = @id`

	item, err := t.scanOne(t.db.QueryRow(ctx, sql, pgx.NamedArgs{"id": id}))
	if err != nil {
		return item, fmt.Errorf("%s: %w", t.op("Get"), err)
	}
	return item, nil
}

// Insert writes a new row and returns it as persisted, with the store-assigned id.
func (t *Table[T]) Insert(ctx context.Context, item T) (T, error) {
	values := t.schema.Values(item)

	var cols, params []string
	args := pgx.NamedArgs{}
	for _, c := range t.schema.Writable {
		v, ok := values[c]
		if !ok {
			continue
		}
		cols = append(cols, c)
		params = append(params, "@"+c)
		args[c] = v
	}

	sql := `INSERT INTO ` + t.schema.Table + ` (` + strings.Join(cols, ", ") + `)
		VALUES (` + strings.Join(params, ", ") + `)
		RETURNING ` + t.cols

	result, err := t.scanOne(t.db.QueryRow(ctx, sql, args))
	if err != nil {
		return result, fmt.Errorf("%s: %w", t.op("Insert"), err)
	}
	return result, nil
}

// Update sets the given columns on the row with the given id and returns the
// updated row. An empty field set returns the row unchanged.
// Returns domain.ErrNotFound if no row with that ID exists.
func (t *Table[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error) {
	op := t.op("Update")
	if len(fields) == 0 {
		return t.Get(ctx, id)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if !slices.Contains(t.schema.Writable, k) || k == "trip_id" {
			var zero T
			return zero, fmt.Errorf("%s: %w: column %q cannot be updated", op, domain.ErrValidation, k)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := pgx.NamedArgs{"id": id}
	sets := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		sets = append(sets, k+" = @"+k)
		args[k] = fields[k]
	}
	if t.schema.Touch {
		sets = append(sets, "updated_at = now()")
	}

	sql := `UPDATE ` + t.schema.Table + ` SET ` + strings.Join(sets, ", ") + `
		WHERE id = @id
		RETURNING ` + t.cols

	result, err := t.scanOne(t.db.QueryRow(ctx, sql, args))
	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Delete removes the row with the given id. Deleting a row that does not
// exist is not an error.
func (t *Table[T]) Delete(ctx context.Context, id uuid.UUID) error {
	sql := `DELETE FROM ` + t.schema.Table + ` WHERE id = @id`
	if _, err := t.db.Exec(ctx, sql, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("%s: %w", t.op("Delete"), err)
	}
	return nil
}

// where builds the WHERE clause for equality filters. Columns are checked
// against the schema so caller-supplied names never reach the SQL text.
func (t *Table[T]) where(eq map[string]any) (string, pgx.NamedArgs, error) {
	args := pgx.NamedArgs{}
	if len(eq) == 0 {
		return "", args, nil
	}

	keys := make([]string, 0, len(eq))
	for k := range eq {
		if !slices.Contains(t.schema.Columns, k) {
			return "", nil, fmt.Errorf("%w: unknown filter column %q", domain.ErrValidation, k)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	conds := make([]string, len(keys))
	for i, k := range keys {
		conds[i] = k + " = @eq_" + k
		args["eq_"+k] = eq[k]
	}
	return ` WHERE ` + strings.Join(conds, " AND "), args, nil
}

// order returns the ORDER BY expression for q. The primary key is appended as
// a tie-breaker so page slices are stable.
func (t *Table[T]) order(q domain.Query) (string, error) {
	col := q.OrderBy
	if col == "" {
		col = t.schema.OrderBy
	}
	if !slices.Contains(t.schema.Columns, col) {
		return "", fmt.Errorf("%w: unknown sort column %q", domain.ErrValidation, col)
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	if col == "id" {
		return "id " + dir, nil
	}
	return col + " " + dir + ", id", nil
}

func (t *Table[T]) scanOne(row pgx.Row) (T, error) {
	item, err := t.schema.Scan(row)
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return item, nil
}

func (t *Table[T]) op(method string) string {
	return "repo.Table[" + t.schema.Table + "]." + method
}
