package loader

import (
	"context"
	stderrors "errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"thyroidrisk/domain/core"
	"thyroidrisk/domain/dataset"
	"thyroidrisk/ports"
)

// Snapshot is a successful load: the shared table plus the notices emitted while loading
type Snapshot struct {
	ID       core.LoadID
	Table    *dataset.Table
	Notices  []Notice
	LoadedAt time.Time
}

// Record converts the snapshot to a history entry
func (s *Snapshot) Record() *dataset.LoadRecord {
	rows, cols := s.Table.Shape()
	notices := make([]string, len(s.Notices))
	for i, n := range s.Notices {
		notices[i] = n.String()
	}
	return &dataset.LoadRecord{
		ID:       s.ID,
		Source:   s.Table.Source,
		Rows:     rows,
		Columns:  cols,
		Notices:  notices,
		LoadedAt: s.LoadedAt,
	}
}

// FailedLoad is returned when no table could be produced
type FailedLoad struct {
	Notices []Notice
	Err     error
}

func (f *FailedLoad) Error() string { return f.Err.Error() }
func (f *FailedLoad) Unwrap() error { return f.Err }

// AsFailedLoad extracts the notices of a failed load from err
func AsFailedLoad(err error) (*FailedLoad, bool) {
	var failed *FailedLoad
	ok := stderrors.As(err, &failed)
	return failed, ok
}

// Status summarises the cache for the API
type Status struct {
	Loaded   bool        `json:"loaded"`
	LoadID   core.LoadID `json:"load_id,omitempty"`
	Source   string      `json:"source,omitempty"`
	Rows     int         `json:"rows"`
	Columns  int         `json:"columns"`
	LoadedAt *time.Time  `json:"loaded_at,omitempty"`
	Notices  []Notice    `json:"notices"`
}

// Cache loads the table once and hands the same read-only snapshot to every
// caller. Concurrent first calls share a single load. Failed loads are not
// kept, so the next call tries again.
type Cache struct {
	loader   *Loader
	history  ports.LoadHistoryRepository
	group    singleflight.Group
	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewCache wraps loader. history may be nil.
func NewCache(loader *Loader, history ports.LoadHistoryRepository) *Cache {
	return &Cache{loader: loader, history: history}
}

// Get returns the cached snapshot, loading it on first use
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snap := c.current(); snap != nil {
		return snap, nil
	}

	ch := c.group.DoChan("dataset", func() (interface{}, error) {
		if snap := c.current(); snap != nil {
			return snap, nil
		}
		return c.load(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

// Status reports whether a table is cached
func (c *Cache) Status() Status {
	snap := c.current()
	if snap == nil {
		return Status{Notices: []Notice{}}
	}
	rows, cols := snap.Table.Shape()
	loadedAt := snap.LoadedAt
	return Status{
		Loaded:   true,
		LoadID:   snap.ID,
		Source:   snap.Table.Source,
		Rows:     rows,
		Columns:  cols,
		LoadedAt: &loadedAt,
		Notices:  snap.Notices,
	}
}

func (c *Cache) current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

func (c *Cache) load(ctx context.Context) (*Snapshot, error) {
	notices := &NoticeLog{}
	start := time.Now()

	table, err := c.loader.WithSink(Tee(notices, c.loader.Sink)).Load(ctx)
	if err != nil {
		log.Printf("[Cache] Load failed after %v: %v", time.Since(start), err)
		return nil, &FailedLoad{Notices: notices.Notices(), Err: err}
	}

	snap := &Snapshot{
		ID:       core.NewLoadID(),
		Table:    table,
		Notices:  notices.Notices(),
		LoadedAt: time.Now(),
	}
	rows, cols := table.Shape()
	log.Printf("[Cache] Loaded %s (%d rows, %d columns) in %v", table.Source, rows, cols, time.Since(start))

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	if c.history != nil {
		if err := c.history.Record(ctx, snap.Record()); err != nil {
			log.Printf("[Cache] Failed to record load %s: %v", snap.ID, err)
		}
	}

	return snap, nil
}
