package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

type AirlineUseCase interface {
	ListAirlines(ctx context.Context) ([]domain.Airline, error)
	GetAirline(ctx context.Context, id int64) (*domain.Airline, error)
	CreateAirline(ctx context.Context, input CreateAirlineInput) (*domain.Airline, error)
	UpdateAirline(ctx context.Context, id int64, input UpdateAirlineInput) (*domain.Airline, error)
	ToggleAirlineStatus(ctx context.Context, id int64) (*domain.Airline, error)
}

type CreateAirlineInput struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"gmail" validate:"required"`
	Phone string `json:"numero_telefono" validate:"required"`
}

type UpdateAirlineInput struct {
	Name  *string `json:"nombre" validate:"omitnil,min=1"`
	Email *string `json:"gmail" validate:"omitnil,min=1"`
	Phone *string `json:"numero_telefono" validate:"omitnil,min=1"`
}

func (s *Store) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	ds, err := s.snapshot(ctx, "store.ListAirlines")
	if err != nil {
		return nil, err
	}
	return ds.Airlines, nil
}

func (s *Store) GetAirline(ctx context.Context, id int64) (*domain.Airline, error) {
	const op = "store.GetAirline"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Airlines, id)
	if i < 0 {
		return nil, domain.NotFound(op, "airline", id)
	}
	airline := ds.Airlines[i]
	return &airline, nil
}

func (s *Store) CreateAirline(ctx context.Context, input CreateAirlineInput) (*domain.Airline, error) {
	const op = "store.CreateAirline"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var created domain.Airline
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		created = domain.Airline{
			ID:     nextID(ds.Airlines),
			Name:   input.Name,
			Email:  input.Email,
			Phone:  input.Phone,
			Status: domain.StatusActive,
		}
		ds.Airlines = append(ds.Airlines, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateAirline(ctx context.Context, id int64, input UpdateAirlineInput) (*domain.Airline, error) {
	const op = "store.UpdateAirline"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var updated domain.Airline
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Airlines, id)
		if i < 0 {
			return domain.NotFound(op, "airline", id)
		}
		a := &ds.Airlines[i]
		if input.Name != nil {
			a.Name = *input.Name
		}
		if input.Email != nil {
			a.Email = *input.Email
		}
		if input.Phone != nil {
			a.Phone = *input.Phone
		}
		updated = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) ToggleAirlineStatus(ctx context.Context, id int64) (*domain.Airline, error) {
	const op = "store.ToggleAirlineStatus"
	var updated domain.Airline
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Airlines, id)
		if i < 0 {
			return domain.NotFound(op, "airline", id)
		}
		ds.Airlines[i].Status = ds.Airlines[i].Status.Toggle()
		updated = ds.Airlines[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
