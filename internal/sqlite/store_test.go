package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-descriptor/internal/database"
	"route-descriptor/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "nested", "graph.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreHealthCheck(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.HealthCheck(context.Background()))
}

func TestStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")
	ctx := context.Background()

	store, err := New(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Names().Upsert(ctx, []models.StreetName{{ID: 1, Name: "Main Street"}}))
	require.NoError(t, store.Close())

	store, err = New(path, nil)
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, path, store.GetDBPath())

	names, err := store.Names().GetByIDs(ctx, []uint32{1})
	require.NoError(t, err)
	assert.Equal(t, "Main Street", names[1])
}

func TestNameRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Names().Upsert(ctx, []models.StreetName{
		{ID: 10, Name: "Main Street"},
		{ID: 11, Name: "Harbour Road"},
	})
	require.NoError(t, err)

	require.NoError(t, store.Names().Upsert(ctx, []models.StreetName{{ID: 11, Name: "Harbor Road"}}))

	names, err := store.Names().GetByIDs(ctx, []uint32{10, 11, 99})
	require.NoError(t, err)
	assert.Equal(t, map[uint32]string{10: "Main Street", 11: "Harbor Road"}, names)

	count, err := store.Names().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNameRepositoryEmptyLookup(t *testing.T) {
	store := newTestStore(t)

	names, err := store.Names().GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNodeRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := models.NewCoordinate(52.5, 13.4)
	b := models.NewCoordinate(-33.86785, 151.20732)

	require.NoError(t, store.Nodes().Upsert(ctx, []models.Node{{ID: 1, Location: a}, {ID: 2, Location: b}}))

	nodes, err := store.Nodes().GetByIDs(ctx, []uint32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[uint32]models.Coordinate{1: a, 2: b}, nodes)

	count, err := store.Nodes().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNodeRepositoryRejectsInvalidLocation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Nodes().Upsert(ctx, []models.Node{
		{ID: 1, Location: models.NewCoordinate(1, 1)},
		{ID: 2, Location: models.Coordinate{Lat: 9100000, Lon: 0}},
	})
	assert.ErrorIs(t, err, database.ErrInvalidNode)

	count, err := store.Nodes().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNodeRepositoryLargeLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var nodes []models.Node
	var ids []uint32
	for i := uint32(0); i < 1200; i++ {
		nodes = append(nodes, models.Node{ID: i, Location: models.Coordinate{Lat: int32(i), Lon: -int32(i)}})
		ids = append(ids, i)
	}
	require.NoError(t, store.Nodes().Upsert(ctx, nodes))

	got, err := store.Nodes().GetByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, got, 1200)
	assert.Equal(t, models.Coordinate{Lat: 1199, Lon: -1199}, got[1199])
}

func TestChunkIDs(t *testing.T) {
	ids := make([]uint32, 1001)
	chunks := chunkIDs(ids)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[2], 1)
	assert.Empty(t, chunkIDs(nil))
}
