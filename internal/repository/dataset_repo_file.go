package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

type FileDatasetRepository struct {
	path string
}

func NewFileDatasetRepository(path string) *FileDatasetRepository {
	return &FileDatasetRepository{path: path}
}

// Load returns an empty dataset when the file does not exist yet.
func (r *FileDatasetRepository) Load(_ context.Context) (*domain.Dataset, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return ds.Normalize(), nil
}

func (r *FileDatasetRepository) Save(_ context.Context, ds *domain.Dataset) error {
	data, err := json.MarshalIndent(ds.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// Write to a sibling file and rename so readers never see a torn document.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

var _ DatasetRepository = (*FileDatasetRepository)(nil)
