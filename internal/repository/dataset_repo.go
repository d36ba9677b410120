package repository

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

// DatasetRepository loads and saves the whole document. Implementations never
// apply partial updates; Save replaces what was there.
type DatasetRepository interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	Save(ctx context.Context, ds *domain.Dataset) error
}
