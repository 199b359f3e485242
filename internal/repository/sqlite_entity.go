package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/renoboard/internal/db"
	"github.com/alexanderramin/renoboard/internal/domain"
)

// SQLiteEntityRepo implements EntityRepo using a SQLite database.
type SQLiteEntityRepo struct {
	db db.DBTX
}

// NewSQLiteEntityRepo creates a new SQLiteEntityRepo. Pass a *sql.Tx to
// scope the repo to a unit of work.
func NewSQLiteEntityRepo(q db.DBTX) *SQLiteEntityRepo {
	return &SQLiteEntityRepo{db: q}
}

const entityColumns = `id, kind, title, status, section_id,
	raw_start, raw_date, raw_created, raw_scheduled, raw_end,
	planned_days, metadata, created_at, updated_at`

func (r *SQLiteEntityRepo) Create(ctx context.Context, e *domain.ScheduledEntity) error {
	meta, err := encodeMetadata(e.Metadata)
	if err != nil {
		return err
	}
	query := `INSERT INTO entities (` + entityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		storedKind(e.Kind),
		e.Title,
		e.Status,
		nullableString(e.SectionID),
		dateValueToValue(e.RawStart),
		dateValueToValue(e.RawDate),
		dateValueToValue(e.RawCreated),
		dateValueToValue(e.RawScheduled),
		dateValueToValue(e.RawEnd),
		e.PlannedDays,
		meta,
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting entity: %w", err)
	}
	return nil
}

func (r *SQLiteEntityRepo) GetByID(ctx context.Context, id string) (*domain.ScheduledEntity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE id = ?`
	e, err := scanEntity(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entity %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEntityRepo) List(ctx context.Context, f EntityFilter) ([]domain.ScheduledEntity, error) {
	var where []string
	var args []any
	if len(f.Kinds) > 0 {
		marks := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			marks[i] = "?"
			args = append(args, string(k))
		}
		where = append(where, "kind IN ("+strings.Join(marks, ", ")+")")
	}
	if f.SectionID != "" {
		where = append(where, "section_id = ?")
		args = append(args, f.SectionID)
	}

	query := `SELECT ` + entityColumns + ` FROM entities`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	var out []domain.ScheduledEntity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}
	return out, nil
}

func (r *SQLiteEntityRepo) Update(ctx context.Context, e *domain.ScheduledEntity) error {
	meta, err := encodeMetadata(e.Metadata)
	if err != nil {
		return err
	}
	query := `UPDATE entities SET kind = ?, title = ?, status = ?, section_id = ?,
		raw_start = ?, raw_date = ?, raw_created = ?, raw_scheduled = ?, raw_end = ?,
		planned_days = ?, metadata = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		storedKind(e.Kind),
		e.Title,
		e.Status,
		nullableString(e.SectionID),
		dateValueToValue(e.RawStart),
		dateValueToValue(e.RawDate),
		dateValueToValue(e.RawCreated),
		dateValueToValue(e.RawScheduled),
		dateValueToValue(e.RawEnd),
		e.PlannedDays,
		meta,
		formatTimestamp(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entity: %w", err)
	}
	return requireAffected(res, "entity", e.ID)
}

func (r *SQLiteEntityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entity: %w", err)
	}
	return requireAffected(res, "entity", id)
}

// Version combines row counts with the latest write timestamps of both tables.
func (r *SQLiteEntityRepo) Version(ctx context.Context) (string, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM entities),
		(SELECT COALESCE(MAX(updated_at), '') FROM entities),
		(SELECT COUNT(*) FROM sections),
		(SELECT COALESCE(MAX(created_at), '') FROM sections)`
	var entities, sections int
	var entityMax, sectionMax string
	if err := r.db.QueryRowContext(ctx, query).Scan(&entities, &entityMax, &sections, &sectionMax); err != nil {
		return "", fmt.Errorf("reading store version: %w", err)
	}
	return fmt.Sprintf("%d/%s/%d/%s", entities, entityMax, sections, sectionMax), nil
}

func scanEntity(row rowScanner) (*domain.ScheduledEntity, error) {
	var e domain.ScheduledEntity
	var kind, meta, createdAt, updatedAt string
	var section, start, date, created, scheduled, end sql.NullString

	err := row.Scan(
		&e.ID, &kind, &e.Title, &e.Status, &section,
		&start, &date, &created, &scheduled, &end,
		&e.PlannedDays, &meta, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning entity: %w", err)
	}

	e.Kind = domain.EntityKind(kind)
	e.SectionID = section.String
	e.RawStart = dateValueFromNull(start)
	e.RawDate = dateValueFromNull(date)
	e.RawCreated = dateValueFromNull(created)
	e.RawScheduled = dateValueFromNull(scheduled)
	e.RawEnd = dateValueFromNull(end)

	if e.Metadata, err = decodeMetadata(meta); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func storedKind(k domain.EntityKind) string {
	if k == "" {
		return string(domain.KindGeneric)
	}
	return string(k)
}

func requireAffected(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}
