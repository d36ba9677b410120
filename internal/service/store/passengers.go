package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type PassengerUseCase interface {
	ListPassengers(ctx context.Context) ([]domain.Passenger, error)
	GetPassenger(ctx context.Context, id int64) (*domain.Passenger, error)
	GetPassengerByDNI(ctx context.Context, dni string) (*domain.Passenger, error)
	CreatePassenger(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error)
	UpdatePassenger(ctx context.Context, id int64, input UpdatePassengerInput) (*domain.Passenger, error)
	TogglePassengerStatus(ctx context.Context, id int64) (*domain.Passenger, error)
}

type CreatePassengerInput struct {
	DNI       string `json:"dni" validate:"required"`
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido"`
	Email     string `json:"gmail"`
	Phone     string `json:"numero_telefono"`
	Password  string `json:"contrasena"`
}

type UpdatePassengerInput struct {
	DNI       *string `json:"dni" validate:"omitnil,min=1"`
	FirstName *string `json:"nombre" validate:"omitnil,min=1"`
	LastName  *string `json:"apellido"`
	Email     *string `json:"gmail"`
	Phone     *string `json:"numero_telefono"`
	Password  *string `json:"contrasena" validate:"omitnil,min=1"`
}

func (s *Store) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	ds, err := s.snapshot(ctx, "store.ListPassengers")
	if err != nil {
		return nil, err
	}
	return ds.Passengers, nil
}

func (s *Store) GetPassenger(ctx context.Context, id int64) (*domain.Passenger, error) {
	const op = "store.GetPassenger"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Passengers, id)
	if i < 0 {
		return nil, domain.NotFound(op, "passenger", id)
	}
	p := ds.Passengers[i]
	return &p, nil
}

func (s *Store) GetPassengerByDNI(ctx context.Context, dni string) (*domain.Passenger, error) {
	const op = "store.GetPassengerByDNI"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexWhere(ds.Passengers, func(p domain.Passenger) bool { return p.DNI == dni })
	if i < 0 {
		return nil, domain.NotFound(op, "passenger with dni", dni)
	}
	p := ds.Passengers[i]
	return &p, nil
}

func (s *Store) CreatePassenger(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error) {
	const op = "store.CreatePassenger"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	hash, err := hashPassword(op, input.Password)
	if err != nil {
		return nil, err
	}

	var created domain.Passenger
	err = s.mutate(ctx, op, func(ds *domain.Dataset) error {
		if dniTaken(ds.Passengers, input.DNI, 0) {
			return domain.NewError(op, domain.ErrConflict, "a passenger with dni %s already exists", input.DNI)
		}
		created = domain.Passenger{
			ID:           nextID(ds.Passengers),
			DNI:          input.DNI,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			Phone:        input.Phone,
			PasswordHash: hash,
			Status:       domain.StatusActive,
		}
		ds.Passengers = append(ds.Passengers, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdatePassenger(ctx context.Context, id int64, input UpdatePassengerInput) (*domain.Passenger, error) {
	const op = "store.UpdatePassenger"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var hash string
	if input.Password != nil {
		var err error
		if hash, err = hashPassword(op, *input.Password); err != nil {
			return nil, err
		}
	}

	var updated domain.Passenger
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Passengers, id)
		if i < 0 {
			return domain.NotFound(op, "passenger", id)
		}
		if input.DNI != nil && dniTaken(ds.Passengers, *input.DNI, id) {
			return domain.NewError(op, domain.ErrConflict, "a passenger with dni %s already exists", *input.DNI)
		}

		p := &ds.Passengers[i]
		if input.DNI != nil {
			p.DNI = *input.DNI
		}
		if input.FirstName != nil {
			p.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			p.LastName = *input.LastName
		}
		if input.Email != nil {
			p.Email = *input.Email
		}
		if input.Phone != nil {
			p.Phone = *input.Phone
		}
		if hash != "" {
			p.PasswordHash = hash
		}
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) TogglePassengerStatus(ctx context.Context, id int64) (*domain.Passenger, error) {
	const op = "store.TogglePassengerStatus"
	var updated domain.Passenger
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Passengers, id)
		if i < 0 {
			return domain.NotFound(op, "passenger", id)
		}
		ds.Passengers[i].Status = ds.Passengers[i].Status.Toggle()
		updated = ds.Passengers[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// checkPassword reports whether password matches the stored hash.
func checkPassword(p domain.Passenger, password string) bool {
	if p.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
}

func dniTaken(passengers []domain.Passenger, dni string, except int64) bool {
	return indexWhere(passengers, func(p domain.Passenger) bool {
		return p.DNI == dni && p.ID != except
	}) >= 0
}

func hashPassword(op, password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", &domain.Error{Op: op, Kind: domain.ErrValidation, Msg: "contrasena cannot be stored", Err: err}
	}
	return string(hash), nil
}
