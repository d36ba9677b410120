package store

import (
	"context"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/Domenick1991/aerolinea/internal/kafka"
	"github.com/Domenick1991/aerolinea/internal/repository"
	"github.com/google/uuid"
)

const lockRetryInterval = 25 * time.Millisecond

// UseCase is everything the transport layer needs from the store.
type UseCase interface {
	AirlineUseCase
	PassengerUseCase
	AirplaneUseCase
	FlightUseCase
	SeatUseCase
	PaymentUseCase
	TicketUseCase
}

// Cache is an optional shared read cache plus a cross-process write lock.
type Cache interface {
	GetDataset(ctx context.Context) (*domain.Dataset, error)
	SetDataset(ctx context.Context, ds *domain.Dataset) error
	InvalidateDataset(ctx context.Context) error
	AcquireLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Store owns the dataset. Every mutation runs load, validate, mutate and save
// while holding the write lock, so concurrent requests cannot overwrite each
// other's changes.
type Store struct {
	repo     repository.DatasetRepository
	cache    Cache
	producer Producer

	eventsTopic        string
	notificationsTopic string
	lockTTL            time.Duration
	lockWait           time.Duration
	now                func() time.Time

	mu sync.RWMutex
	// cacheStale is set when a saved dataset could neither be written to nor
	// evicted from the cache. Reads go to the repository until a refill works.
	cacheStale atomic.Bool
}

type Option func(*Store)

// WithCache enables the shared cache and the distributed write lock.
func WithCache(cache Cache, lockTTL, lockWait time.Duration) Option {
	return func(s *Store) {
		s.cache = cache
		s.lockTTL = lockTTL
		s.lockWait = lockWait
	}
}

func WithProducer(producer Producer, eventsTopic, notificationsTopic string) Option {
	return func(s *Store) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(repo repository.DatasetRepository, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		lockTTL:  10 * time.Second,
		lockWait: 2 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot returns a dataset for read-only use, preferring the cache.
func (s *Store) snapshot(ctx context.Context, op string) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache != nil && !s.cacheStale.Load() {
		if cached, err := s.cache.GetDataset(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	ds, err := s.repo.Load(ctx)
	if err != nil {
		return nil, domain.PersistenceFailure(op, err)
	}
	if s.cache != nil && s.cache.SetDataset(ctx, ds) == nil {
		s.cacheStale.Store(false)
	}
	return ds, nil
}

// mutate loads the authoritative dataset, applies fn and saves the result.
// Nothing is written when fn fails.
func (s *Store) mutate(ctx context.Context, op string, fn func(ds *domain.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		if err := s.acquire(ctx, op); err != nil {
			return err
		}
		defer func() {
			if err := s.cache.ReleaseLock(context.WithoutCancel(ctx)); err != nil {
				log.Printf("%s: release dataset lock: %v", op, err)
			}
		}()
	}

	ds, err := s.repo.Load(ctx)
	if err != nil {
		return domain.PersistenceFailure(op, err)
	}
	if err := fn(ds); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, ds); err != nil {
		return domain.PersistenceFailure(op, err)
	}

	if s.cache != nil {
		s.refreshCache(ctx, op, ds)
	}
	return nil
}

// refreshCache writes a saved dataset through to the cache. When that fails
// the cached copy is evicted, and when eviction fails too reads skip the
// cache until it accepts a fresh copy.
func (s *Store) refreshCache(ctx context.Context, op string, ds *domain.Dataset) {
	err := s.cache.SetDataset(ctx, ds)
	if err == nil {
		s.cacheStale.Store(false)
		return
	}
	log.Printf("%s: refresh dataset cache: %v", op, err)

	if err := s.cache.InvalidateDataset(context.WithoutCancel(ctx)); err != nil {
		log.Printf("%s: evict dataset cache: %v", op, err)
		s.cacheStale.Store(true)
	}
}

func (s *Store) acquire(ctx context.Context, op string) error {
	deadline := time.Now().Add(s.lockWait)
	for {
		ok, err := s.cache.AcquireLock(ctx, s.lockTTL)
		if err != nil {
			return domain.PersistenceFailure(op, err)
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return domain.NewError(op, domain.ErrPersistence, "dataset is locked by another writer")
		}

		select {
		case <-ctx.Done():
			return domain.PersistenceFailure(op, ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
}

// publish fans an event out to the configured topics. Failures are logged
// and never undo the persisted change.
func (s *Store) publish(ctx context.Context, event kafka.Event) {
	if s.producer == nil {
		return
	}
	event.ID = uuid.NewString()
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	key := strconv.FormatInt(event.EntityID, 10)

	for _, topic := range []string{s.eventsTopic, s.notificationsTopic} {
		if topic == "" {
			continue
		}
		if err := s.producer.Publish(ctx, topic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s event for %s to %s: %v", event.Type, key, topic, err)
		}
	}
}

var _ UseCase = (*Store)(nil)
