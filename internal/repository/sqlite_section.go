package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/renoboard/internal/db"
	"github.com/alexanderramin/renoboard/internal/domain"
)

// SQLiteSectionRepo implements SectionRepo using a SQLite database.
type SQLiteSectionRepo struct {
	db db.DBTX
}

func NewSQLiteSectionRepo(q db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: q}
}

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sections (id, name, order_index, created_at) VALUES (?, ?, ?, ?)`,
		s.ID, s.Name, s.OrderIndex, formatTimestamp(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, order_index, created_at FROM sections WHERE id = ?`, id)
	s, err := scanSection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("section %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns sections by order index, ties broken by creation.
func (r *SQLiteSectionRepo) List(ctx context.Context) ([]domain.Section, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, order_index, created_at FROM sections ORDER BY order_index, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var out []domain.Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return out, nil
}

// Delete removes the section. Entities in it become unassigned.
func (r *SQLiteSectionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting section: %w", err)
	}
	return requireAffected(res, "section", id)
}

func scanSection(row rowScanner) (*domain.Section, error) {
	var s domain.Section
	var createdAt string
	err := row.Scan(&s.ID, &s.Name, &s.OrderIndex, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning section: %w", err)
	}
	if s.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &s, nil
}
