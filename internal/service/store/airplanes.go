package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

type AirplaneUseCase interface {
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	GetAirplaneByModel(ctx context.Context, model string) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, input CreateAirplaneInput) (*domain.Airplane, error)
	UpdateAirplane(ctx context.Context, id int64, input UpdateAirplaneInput) (*domain.Airplane, error)
	ToggleAirplaneStatus(ctx context.Context, id int64) (*domain.Airplane, error)
}

type CreateAirplaneInput struct {
	Model     string `json:"modelo" validate:"required"`
	Capacity  int    `json:"capacidad" validate:"required,gt=0"`
	AirlineID int64  `json:"aerolineaId" validate:"required"`
}

// UpdateAirplaneInput changes the airplane itself. Flights already scheduled
// keep the seat limit they were created with.
type UpdateAirplaneInput struct {
	Model    *string `json:"modelo" validate:"omitnil,min=1"`
	Capacity *int    `json:"capacidad" validate:"omitnil,gt=0"`
}

func (s *Store) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	ds, err := s.snapshot(ctx, "store.ListAirplanes")
	if err != nil {
		return nil, err
	}
	return ds.Airplanes, nil
}

func (s *Store) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	const op = "store.GetAirplane"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Airplanes, id)
	if i < 0 {
		return nil, domain.NotFound(op, "airplane", id)
	}
	a := ds.Airplanes[i]
	return &a, nil
}

// GetAirplaneByModel returns the first airplane with the given model.
func (s *Store) GetAirplaneByModel(ctx context.Context, model string) (*domain.Airplane, error) {
	const op = "store.GetAirplaneByModel"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexWhere(ds.Airplanes, func(a domain.Airplane) bool { return a.Model == model })
	if i < 0 {
		return nil, domain.NotFound(op, "airplane with model", model)
	}
	a := ds.Airplanes[i]
	return &a, nil
}

func (s *Store) CreateAirplane(ctx context.Context, input CreateAirplaneInput) (*domain.Airplane, error) {
	const op = "store.CreateAirplane"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var created domain.Airplane
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		if indexByID(ds.Airlines, input.AirlineID) < 0 {
			return domain.NewError(op, domain.ErrReference, "airline %d does not exist", input.AirlineID)
		}
		created = domain.Airplane{
			ID:        nextID(ds.Airplanes),
			Model:     input.Model,
			Capacity:  input.Capacity,
			AirlineID: input.AirlineID,
			Status:    domain.AirplaneStatusAvailable,
		}
		ds.Airplanes = append(ds.Airplanes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateAirplane(ctx context.Context, id int64, input UpdateAirplaneInput) (*domain.Airplane, error) {
	const op = "store.UpdateAirplane"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var updated domain.Airplane
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Airplanes, id)
		if i < 0 {
			return domain.NotFound(op, "airplane", id)
		}
		a := &ds.Airplanes[i]
		if input.Model != nil {
			a.Model = *input.Model
		}
		if input.Capacity != nil {
			a.Capacity = *input.Capacity
		}
		updated = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) ToggleAirplaneStatus(ctx context.Context, id int64) (*domain.Airplane, error) {
	const op = "store.ToggleAirplaneStatus"
	var updated domain.Airplane
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Airplanes, id)
		if i < 0 {
			return domain.NotFound(op, "airplane", id)
		}
		ds.Airplanes[i].Status = ds.Airplanes[i].Status.Toggle()
		updated = ds.Airplanes[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
