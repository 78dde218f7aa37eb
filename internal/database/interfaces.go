package database

import (
	"context"

	"route-descriptor/internal/models"
)

// GraphStore is the interface for the graph metadata the describer reads:
// street names and node locations
type GraphStore interface {
	Close() error
	HealthCheck(ctx context.Context) error
	Names() NameRepository
	Nodes() NodeRepository
}

// NameRepository handles street name persistence
type NameRepository interface {
	GetByIDs(ctx context.Context, ids []uint32) (map[uint32]string, error)
	Upsert(ctx context.Context, names []models.StreetName) error
	Count(ctx context.Context) (int, error)
}

// NodeRepository handles node location persistence
type NodeRepository interface {
	GetByIDs(ctx context.Context, ids []uint32) (map[uint32]models.Coordinate, error)
	Upsert(ctx context.Context, nodes []models.Node) error
	Count(ctx context.Context) (int, error)
}
