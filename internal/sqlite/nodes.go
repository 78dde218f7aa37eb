package sqlite

import (
	"context"
	"fmt"

	"route-descriptor/internal/database"
	"route-descriptor/internal/models"
)

type nodeRepository struct {
	store *Store
}

func (r *nodeRepository) GetByIDs(ctx context.Context, ids []uint32) (map[uint32]models.Coordinate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	nodes := make(map[uint32]models.Coordinate, len(ids))
	for _, chunk := range chunkIDs(ids) {
		placeholders, args := inClause(chunk)
		query := fmt.Sprintf("SELECT id, lat, lon FROM nodes WHERE id IN (%s)", placeholders)

		rows, err := r.store.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query nodes: %w", err)
		}

		for rows.Next() {
			var id int64
			var c models.Coordinate
			if err := rows.Scan(&id, &c.Lat, &c.Lon); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan node: %w", err)
			}
			nodes[uint32(id)] = c
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("error iterating nodes: %w", err)
		}
	}

	return nodes, nil
}

func (r *nodeRepository) Upsert(ctx context.Context, nodes []models.Node) error {
	for _, n := range nodes {
		if !n.Location.Valid() {
			return fmt.Errorf("node %d at %s: %w", n.ID, n.Location, database.ErrInvalidNode)
		}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO nodes (id, lat, lon) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare node insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range nodes {
		if _, err := stmt.ExecContext(ctx, int64(n.ID), n.Location.Lat, n.Location.Lon); err != nil {
			return fmt.Errorf("failed to upsert node %d: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit nodes: %w", err)
	}
	return nil
}

func (r *nodeRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int
	if err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM nodes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count nodes: %w", err)
	}
	return count, nil
}
