package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"lastseen/internal/domain/entity"
	"lastseen/internal/domain/policy"
	"lastseen/internal/domain/repository"
	"lastseen/internal/infra/clock"

	"github.com/google/uuid"
)

var testEpoch = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory record store and user directory.
type memoryStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.LocationRecord
	users   map[uuid.UUID]*entity.User
	deletes map[uuid.UUID]int
	lists   int

	// beforeList runs at the start of every ListRecords call, outside the lock.
	beforeList func()
	// deleteErr, when set, replaces the result of DeleteRecord.
	deleteErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		records: make(map[uuid.UUID]*entity.LocationRecord),
		users:   make(map[uuid.UUID]*entity.User),
		deletes: make(map[uuid.UUID]int),
	}
}

func (m *memoryStore) addUser(name string, connections ...uuid.UUID) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := &entity.User{
		ID:          uuid.New(),
		DisplayName: name,
		Email:       strings.ToLower(name) + "@example.com",
		Connections: connections,
	}
	m.users[u.ID] = u

	return u
}

func (m *memoryStore) connect(from, to uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[from].Connections = append(m.users[from].Connections, to)
}

func (m *memoryStore) put(r *entity.LocationRecord) *entity.LocationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	m.records[r.ID] = r.Clone()

	return r
}

func (m *memoryStore) deleteCount(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deletes[id]
}

func (m *memoryStore) listCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lists
}

func (m *memoryStore) ListRecords(_ context.Context, filter repository.ListFilter) ([]*entity.LocationRecord, error) {
	if m.beforeList != nil {
		m.beforeList()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++

	var out []*entity.LocationRecord
	for _, r := range m.records {
		if filter.OwnerID != nil && r.OwnerID != *filter.OwnerID {
			continue
		}
		out = append(out, r.Clone())
	}
	slices.SortFunc(out, func(a, b *entity.LocationRecord) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (m *memoryStore) CreateRecord(_ context.Context, r *entity.LocationRecord) error {
	m.put(r)
	return nil
}

func (m *memoryStore) UpdateRecord(_ context.Context, r *entity.LocationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[r.ID]; !ok {
		return repository.ErrLocationNotFound
	}
	m.records[r.ID] = r.Clone()

	return nil
}

func (m *memoryStore) DeleteRecord(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deletes[id]++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.records[id]; !ok {
		return repository.ErrLocationNotFound
	}
	delete(m.records, id)

	return nil
}

func (m *memoryStore) DeleteRecordsByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, r := range m.records {
		if r.OwnerID == ownerID {
			delete(m.records, id)
			n++
		}
	}

	return n, nil
}

func (m *memoryStore) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	cp.Connections = slices.Clone(u.Connections)

	return &cp, nil
}

func (m *memoryStore) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if u, err := m.FindUserByID(ctx, id); err == nil {
			out = append(out, u)
		}
	}

	return out, nil
}

func (m *memoryStore) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	var id uuid.UUID
	for _, u := range m.users {
		if u.Email == email {
			id = u.ID
		}
	}
	m.mu.Unlock()

	return m.FindUserByID(ctx, id)
}

func (m *memoryStore) FindUserByShareToken(ctx context.Context, token string) (*entity.User, error) {
	m.mu.Lock()
	var id uuid.UUID
	for _, u := range m.users {
		if u.PublicShareToken != nil && *u.PublicShareToken == token {
			id = u.ID
		}
	}
	m.mu.Unlock()

	return m.FindUserByID(ctx, id)
}

func (m *memoryStore) UpdateShareToken(_ context.Context, userID uuid.UUID, token *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if token == nil {
		u.PublicShareToken = nil
		return nil
	}
	t := *token
	u.PublicShareToken = &t

	return nil
}

func (m *memoryStore) AddConnection(_ context.Context, userID, targetID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slices.Contains(m.users[userID].Connections, targetID) {
		return repository.ErrConnectionExists
	}
	m.users[userID].Connections = append(m.users[userID].Connections, targetID)

	return nil
}

func (m *memoryStore) RemoveConnection(_ context.Context, userID, targetID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := slices.Index(m.users[userID].Connections, targetID)
	if idx < 0 {
		return repository.ErrConnectionNotFound
	}
	m.users[userID].Connections = slices.Delete(m.users[userID].Connections, idx, idx+1)

	return nil
}

func (m *memoryStore) FindFollowerIDs(_ context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []uuid.UUID
	for _, u := range m.users {
		if slices.Contains(u.Connections, ownerID) {
			out = append(out, u.ID)
		}
	}

	return out, nil
}

func newRecord(owner uuid.UUID, updatedAt time.Time, note string) *entity.LocationRecord {
	return &entity.LocationRecord{
		OwnerID:     owner,
		Coordinates: entity.Coordinates{Lat: 25.033, Lng: 121.565},
		Note:        note,
		Visibility:  entity.VisibilityPublic,
		CreatedAt:   updatedAt,
		UpdatedAt:   updatedAt,
	}
}

func expiring(r *entity.LocationRecord, at time.Time) *entity.LocationRecord {
	r.ExpiresAt = &at
	return r
}

func testSyncOptions() SyncOptions {
	return SyncOptions{
		PollInterval:   30 * time.Second,
		StaleAfter:     24 * time.Hour,
		CleanupTimeout: time.Second,
	}
}

func newTestEngine(store *memoryStore, viewerID uuid.UUID, mode policy.Mode, clk *clock.Fake, opts SyncOptions, listener ViewListener) *SyncEngine {
	deps := SyncDeps{
		Locations: store,
		Users:     store,
		Evaluator: policy.NewEvaluator(mode, clk.Now),
		Clock:     clk,
		Logger:    discardLogger(),
	}

	return NewSyncEngine(viewerID, deps, opts, listener)
}
