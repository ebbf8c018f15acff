package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_sura_store.go -package=mocks quran-explorer/internal/storage SuraStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

var suraColumns = []string{
	"id",
	"number",
	"name_arabic",
	"name_simple",
	"name_complex",
	"name_translated",
	"revelation_place",
	"revelation_order",
	"bismillah_pre",
	"verse_count",
	"page_start",
	"page_end",
}

// SuraStore defines the read operations on chapters.
type SuraStore interface {
	// List returns every chapter sorted ascending by order.
	List(ctx context.Context, order SuraOrder) ([]Sura, error)
	// ListByRevelationPlace returns chapters whose revelation place matches pattern, sorted by number.
	ListByRevelationPlace(ctx context.Context, pattern string) ([]Sura, error)
	// GetByNumber returns one chapter. Returns nil and ErrNotFound if not found.
	GetByNumber(ctx context.Context, number int) (*Sura, error)
}

// SuraRepo provides methods for chapter operations.
// It implements the SuraStore interface.
type SuraRepo struct {
	db *sql.DB
}

// NewSuraRepo creates a new SuraRepo.
func NewSuraRepo(db *sql.DB) *SuraRepo {
	return &SuraRepo{db: db}
}

func selectSuras() sq.SelectBuilder {
	return sq.Select(suraColumns...).From("suras")
}

// List returns every chapter sorted ascending by the given order.
func (r *SuraRepo) List(ctx context.Context, order SuraOrder) ([]Sura, error) {
	switch order {
	case OrderByNumber, OrderByRevelationOrder:
	default:
		return nil, fmt.Errorf("unsupported sura order %q", order)
	}
	return r.query(ctx, selectSuras().OrderBy(string(order)+" ASC", "number ASC"))
}

// ListByRevelationPlace returns chapters whose revelation place matches pattern.
// An empty result is not an error.
func (r *SuraRepo) ListByRevelationPlace(ctx context.Context, pattern string) ([]Sura, error) {
	return r.query(ctx, selectSuras().
		Where(sq.Expr("revelation_place REGEXP ?", pattern)).
		OrderBy("number ASC"))
}

// GetByNumber returns one chapter by its number.
// Returns nil and ErrNotFound if not found.
func (r *SuraRepo) GetByNumber(ctx context.Context, number int) (*Sura, error) {
	suras, err := r.query(ctx, selectSuras().Where(sq.Eq{"number": number}).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(suras) == 0 {
		return nil, ErrNotFound
	}
	return &suras[0], nil
}

// InsertBatch inserts or replaces chapters in a single transaction.
func (r *SuraRepo) InsertBatch(ctx context.Context, suras []Sura) error {
	if len(suras) == 0 {
		return nil
	}
	builder := sq.Insert("suras").Options("OR REPLACE").Columns(suraColumns...)
	for _, s := range suras {
		builder = builder.Values(
			s.ID, s.Number, s.NameArabic, s.NameSimple, s.NameComplex, s.NameTranslated,
			s.RevelationPlace, s.RevelationOrder, s.BismillahPre, s.VerseCount, s.PageStart, s.PageEnd,
		)
	}
	return execInTx(ctx, r.db, builder)
}

// DeleteAll removes every chapter.
func (r *SuraRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM suras"); err != nil {
		return fmt.Errorf("failed to delete suras: %w", err)
	}
	return nil
}

func (r *SuraRepo) query(ctx context.Context, builder sq.SelectBuilder) ([]Sura, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sura query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suras: %w", err)
	}
	defer rows.Close()

	suras := make([]Sura, 0)
	for rows.Next() {
		var s Sura
		if err := rows.Scan(
			&s.ID, &s.Number, &s.NameArabic, &s.NameSimple, &s.NameComplex, &s.NameTranslated,
			&s.RevelationPlace, &s.RevelationOrder, &s.BismillahPre, &s.VerseCount, &s.PageStart, &s.PageEnd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sura: %w", err)
		}
		suras = append(suras, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suras: %w", err)
	}

	return suras, nil
}

// execInTx runs an insert statement inside its own transaction.
func execInTx(ctx context.Context, db *sql.DB, builder sq.InsertBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to insert batch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}
