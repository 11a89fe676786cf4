package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/example/tradepost/internal/core/snapshot"
	"github.com/example/tradepost/internal/ports/primary"
	"github.com/example/tradepost/internal/ports/secondary"
)

// OpenFunc performs the one-time storage initialization (open the file,
// run migrations) and returns the repository backed by it. Injected so the
// service stays free of driver concerns.
type OpenFunc func(ctx context.Context) (secondary.PriceRepository, error)

// PriceStoreService implements primary.PriceService. It owns the store
// lifecycle (Unopened -> Opening -> Ready | Failed) and buffers batches
// submitted before the store is ready, draining them oldest-first once it
// is. Failed is terminal for the instance; nothing retries automatically.
type PriceStoreService struct {
	open OpenFunc
	log  zerolog.Logger

	mu       sync.Mutex
	state    primary.StoreState
	openErr  error
	repo     secondary.PriceRepository
	pending  [][]snapshot.Entry
	draining bool

	// done closes once the open lifecycle reaches a terminal state and,
	// on success, the buffered batches have been drained.
	done chan struct{}
}

// NewPriceStoreService creates an unopened store service.
func NewPriceStoreService(open OpenFunc, log zerolog.Logger) *PriceStoreService {
	return &PriceStoreService{
		open:  open,
		log:   log,
		state: primary.StateUnopened,
		done:  make(chan struct{}),
	}
}

// Open starts the asynchronous open lifecycle. Subsequent calls are no-ops.
func (s *PriceStoreService) Open(ctx context.Context) {
	s.mu.Lock()
	if s.state != primary.StateUnopened {
		s.mu.Unlock()
		return
	}
	s.state = primary.StateOpening
	s.mu.Unlock()

	s.log.Debug().Msg("opening price store")
	go s.runOpen(ctx)
}

func (s *PriceStoreService) runOpen(ctx context.Context) {
	repo, err := s.open(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = primary.StateFailed
		s.openErr = fmt.Errorf("store connection failed: %w", err)
		s.mu.Unlock()

		s.log.Error().Err(err).Msg("price store failed to open")
		close(s.done)
		return
	}

	s.repo = repo
	s.state = primary.StateReady
	s.draining = len(s.pending) > 0
	buffered := len(s.pending)
	s.mu.Unlock()

	s.log.Info().Int("buffered_batches", buffered).Msg("price store ready")
	s.drainPending(ctx)
	close(s.done)
}

// drainPending applies buffered batches in submission order. Batches
// submitted while a drain is in progress are appended to the tail and
// picked up on a subsequent pass, never interleaved ahead.
func (s *PriceStoreService) drainPending(ctx context.Context) {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		batch := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		// Batch failures are isolated: a bad buffered batch must not
		// stop fresher ones behind it from applying.
		if _, err := s.write(ctx, batch); err != nil {
			s.log.Error().Err(err).Int("entries", len(batch)).Msg("failed to apply buffered batch")
		}
	}
}

// AwaitReady blocks until the lifecycle is terminal or the context expires.
func (s *PriceStoreService) AwaitReady(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		return fmt.Errorf("waiting for price store: %w", ctx.Err())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == primary.StateFailed {
		return s.openErr
	}
	return nil
}

// State returns the current lifecycle state.
func (s *PriceStoreService) State() primary.StoreState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit ingests one snapshot batch, buffering it when the store is not yet
// ready. Submissions against a failed store surface the open error.
func (s *PriceStoreService) Submit(ctx context.Context, batch []snapshot.Entry) (*primary.IngestResult, error) {
	s.mu.Lock()
	switch {
	case s.state == primary.StateFailed:
		err := s.openErr
		s.mu.Unlock()
		return nil, err

	case s.state == primary.StateReady && !s.draining:
		s.mu.Unlock()
		return s.write(ctx, batch)

	default:
		// Unopened, Opening, or mid-drain: queue for the drain.
		s.pending = append(s.pending, batch)
		s.mu.Unlock()
		s.log.Debug().Int("entries", len(batch)).Msg("buffered snapshot batch")
		return &primary.IngestResult{Queued: true}, nil
	}
}

// write applies one batch as a single atomic upsert. Entries with tier > 1
// are skipped entirely: they are upgrade variants that would overwrite the
// base price for the same id.
func (s *PriceStoreService) write(ctx context.Context, batch []snapshot.Entry) (*primary.IngestResult, error) {
	rows := make([]*secondary.PriceRow, 0, len(batch))
	skipped := 0
	for _, entry := range batch {
		if entry.Skip() {
			skipped++
			continue
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("rejecting batch: %w", err)
		}
		record := entry.Record()
		rows = append(rows, &secondary.PriceRow{
			ID:           record.ID,
			HashedID:     record.HashedID,
			Name:         record.Name,
			MinimumPrice: record.MinimumPrice,
			Tier:         record.Tier,
		})
	}

	if err := s.repo.UpsertBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("upsert batch failed: %w", err)
	}

	s.log.Debug().Int("written", len(rows)).Int("skipped", skipped).Msg("applied snapshot batch")
	return &primary.IngestResult{Written: len(rows), Skipped: skipped}, nil
}

// Lookup finds a cached price by item name. The store must be ready; reads
// during the ready drain are allowed since ingestion is the single writer.
func (s *PriceStoreService) Lookup(ctx context.Context, name string) (*primary.Item, error) {
	s.mu.Lock()
	state := s.state
	repo := s.repo
	openErr := s.openErr
	s.mu.Unlock()

	switch state {
	case primary.StateReady:
	case primary.StateFailed:
		return nil, openErr
	default:
		return nil, ErrStoreNotReady
	}

	row, err := repo.GetByName(ctx, name)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("price lookup failed: %w", err)
	}

	return &primary.Item{
		ID:           row.ID,
		HashedID:     row.HashedID,
		Name:         row.Name,
		MinimumPrice: row.MinimumPrice,
		Tier:         row.Tier,
	}, nil
}

// Stats reports the store state and, when ready, record count and schema
// version.
func (s *PriceStoreService) Stats(ctx context.Context) (*primary.StoreStats, error) {
	s.mu.Lock()
	state := s.state
	repo := s.repo
	s.mu.Unlock()

	stats := &primary.StoreStats{State: state}
	if state != primary.StateReady {
		return stats, nil
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	version, err := repo.SchemaVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}

	stats.Records = count
	stats.SchemaVersion = version
	return stats, nil
}
