// Package store keeps simulation runs and poker tables in process memory.
// Nothing survives a restart; idle entries are evicted by the janitor.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"casino-sim/internal/baccarat"
	"casino-sim/internal/threecard"
)

var ErrNotFound = errors.New("not found")

type Run struct {
	ID        string
	Locale    string
	CreatedAt time.Time
	Result    baccarat.Result
}

type Table struct {
	ID        string
	Locale    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Session   threecard.Session
}

type Store struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	runs     map[string]*Run
	runSeen  map[string]time.Time
	tables   map[string]*Table
	tableMus map[string]*sync.Mutex
}

// New returns an empty store. Entries untouched for ttl are evicted by Sweep;
// ttl <= 0 disables eviction.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		runs:     map[string]*Run{},
		runSeen:  map[string]time.Time{},
		tables:   map[string]*Table{},
		tableMus: map[string]*sync.Mutex{},
	}
}

func (s *Store) SaveRun(locale string, res baccarat.Result) Run {
	now := s.now()
	run := &Run{ID: NewID(), Locale: locale, CreatedAt: now, Result: res}
	s.mu.Lock()
	s.runs[run.ID] = run
	s.runSeen[run.ID] = now
	s.mu.Unlock()
	return *run
}

func (s *Store) GetRun(id string) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return Run{}, ErrNotFound
	}
	s.runSeen[id] = s.now()
	return *run, nil
}

func (s *Store) CreateTable(locale string, sess threecard.Session) Table {
	now := s.now()
	t := &Table{ID: NewID(), Locale: locale, CreatedAt: now, UpdatedAt: now, Session: sess}
	s.mu.Lock()
	s.tables[t.ID] = t
	s.tableMus[t.ID] = &sync.Mutex{}
	s.mu.Unlock()
	return *t
}

func (s *Store) GetTable(id string) (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return Table{}, ErrNotFound
	}
	return *t, nil
}

// UpdateTable runs fn on the table's session while holding the table lock, so
// one hand resolves completely before the next request sees it. The session
// is only replaced when fn succeeds.
func (s *Store) UpdateTable(id string, fn func(threecard.Session) (threecard.Session, error)) (Table, error) {
	s.mu.Lock()
	tmu, ok := s.tableMus[id]
	s.mu.Unlock()
	if !ok {
		return Table{}, ErrNotFound
	}
	tmu.Lock()
	defer tmu.Unlock()

	s.mu.Lock()
	t, ok := s.tables[id]
	if !ok {
		s.mu.Unlock()
		return Table{}, ErrNotFound
	}
	current := *t
	s.mu.Unlock()

	next, err := fn(current.Session)
	if err != nil {
		return current, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok = s.tables[id]; !ok {
		return Table{}, ErrNotFound
	}
	t.Session = next
	t.UpdatedAt = s.now()
	return *t, nil
}

// Sweep evicts idle runs and tables and reports how many were removed.
func (s *Store) Sweep(now time.Time) (runs, tables int) {
	if s.ttl <= 0 {
		return 0, 0
	}
	cutoff := now.Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, seen := range s.runSeen {
		if seen.Before(cutoff) {
			delete(s.runs, id)
			delete(s.runSeen, id)
			runs++
		}
	}
	for id, t := range s.tables {
		if t.UpdatedAt.Before(cutoff) {
			delete(s.tables, id)
			delete(s.tableMus, id)
			tables++
		}
	}
	return runs, tables
}

func (s *Store) Counts() (runs, tables int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs), len(s.tables)
}

func (s *Store) StartJanitor(ctx context.Context, interval time.Duration, onSweep func(runs, tables int)) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				runs, tables := s.Sweep(now)
				if onSweep != nil && runs+tables > 0 {
					onSweep(runs, tables)
				}
			}
		}
	}()
}
