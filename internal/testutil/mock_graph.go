package testutil

import (
	"context"
	"sync"

	"route-descriptor/internal/database"
	"route-descriptor/internal/models"
)

// MockGraphStore is an in-memory database.GraphStore for tests.
// It records lookups so tests can assert which ids were fetched.
type MockGraphStore struct {
	mu        sync.Mutex
	names     map[uint32]string
	nodes     map[uint32]models.Coordinate
	NameCalls [][]uint32
	NodeCalls [][]uint32

	// Err, when set, is returned by every repository call
	Err error
	// HealthErr is returned by HealthCheck
	HealthErr error
	Closed    bool
}

func NewMockGraphStore() *MockGraphStore {
	return &MockGraphStore{
		names: make(map[uint32]string),
		nodes: make(map[uint32]models.Coordinate),
	}
}

// SetName stores a street name
func (m *MockGraphStore) SetName(id uint32, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[id] = name
}

// SetNode stores a node location in degrees
func (m *MockGraphStore) SetNode(id uint32, lat, lon float64) models.Coordinate {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := models.NewCoordinate(lat, lon)
	m.nodes[id] = c
	return c
}

func (m *MockGraphStore) Close() error {
	m.Closed = true
	return nil
}

func (m *MockGraphStore) HealthCheck(ctx context.Context) error { return m.HealthErr }
func (m *MockGraphStore) Names() database.NameRepository        { return mockNames{m} }
func (m *MockGraphStore) Nodes() database.NodeRepository        { return mockNodes{m} }

type mockNames struct{ m *MockGraphStore }

func (r mockNames) GetByIDs(ctx context.Context, ids []uint32) (map[uint32]string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.NameCalls = append(r.m.NameCalls, append([]uint32(nil), ids...))
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	out := make(map[uint32]string, len(ids))
	for _, id := range ids {
		if name, ok := r.m.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func (r mockNames) Upsert(ctx context.Context, names []models.StreetName) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return r.m.Err
	}
	for _, n := range names {
		r.m.names[n.ID] = n.Name
	}
	return nil
}

func (r mockNames) Count(ctx context.Context) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return 0, r.m.Err
	}
	return len(r.m.names), nil
}

type mockNodes struct{ m *MockGraphStore }

func (r mockNodes) GetByIDs(ctx context.Context, ids []uint32) (map[uint32]models.Coordinate, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.NodeCalls = append(r.m.NodeCalls, append([]uint32(nil), ids...))
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	out := make(map[uint32]models.Coordinate, len(ids))
	for _, id := range ids {
		if c, ok := r.m.nodes[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (r mockNodes) Upsert(ctx context.Context, nodes []models.Node) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return r.m.Err
	}
	for _, n := range nodes {
		if !n.Location.Valid() {
			return database.ErrInvalidNode
		}
	}
	for _, n := range nodes {
		r.m.nodes[n.ID] = n.Location
	}
	return nil
}

func (r mockNodes) Count(ctx context.Context) (int, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.Err != nil {
		return 0, r.m.Err
	}
	return len(r.m.nodes), nil
}
