package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

// MemoryDatasetRepository keeps the document as encoded JSON so every Load
// hands out an independent copy.
type MemoryDatasetRepository struct {
	mu    sync.Mutex
	blob  []byte
	saves int
}

func NewMemoryDatasetRepository() *MemoryDatasetRepository {
	return &MemoryDatasetRepository{}
}

func (r *MemoryDatasetRepository) Load(_ context.Context) (*domain.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.blob == nil {
		return domain.NewDataset(), nil
	}
	var ds domain.Dataset
	if err := json.Unmarshal(r.blob, &ds); err != nil {
		return nil, err
	}
	return ds.Normalize(), nil
}

func (r *MemoryDatasetRepository) Save(_ context.Context, ds *domain.Dataset) error {
	data, err := json.Marshal(ds.Normalize())
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.blob = data
	r.saves++
	r.mu.Unlock()
	return nil
}

// Saves reports how many times Save succeeded.
func (r *MemoryDatasetRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

var _ DatasetRepository = (*MemoryDatasetRepository)(nil)
