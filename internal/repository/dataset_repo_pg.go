package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGDatasetRepository stores each named dataset as one JSONB row.
type PGDatasetRepository struct {
	db   *pgxpool.Pool
	name string
}

func NewPGDatasetRepository(db *pgxpool.Pool, name string) *PGDatasetRepository {
	return &PGDatasetRepository{db: db, name: name}
}

func (r *PGDatasetRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS datasets (
            name       TEXT PRIMARY KEY,
            doc        JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `)
	if err != nil {
		return fmt.Errorf("create datasets table: %w", err)
	}
	return nil
}

func (r *PGDatasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM datasets WHERE name=$1`, r.name).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("select dataset %q: %w", r.name, err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(doc, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %q: %w", r.name, err)
	}
	return ds.Normalize(), nil
}

func (r *PGDatasetRepository) Save(ctx context.Context, ds *domain.Dataset) error {
	doc, err := json.Marshal(ds.Normalize())
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO datasets (name, doc, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
    `, r.name, doc)
	if err != nil {
		return fmt.Errorf("upsert dataset %q: %w", r.name, err)
	}
	return nil
}

var _ DatasetRepository = (*PGDatasetRepository)(nil)
