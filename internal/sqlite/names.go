package sqlite

import (
	"context"
	"fmt"

	"route-descriptor/internal/models"
)

type nameRepository struct {
	store *Store
}

func (r *nameRepository) GetByIDs(ctx context.Context, ids []uint32) (map[uint32]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	names := make(map[uint32]string, len(ids))
	for _, chunk := range chunkIDs(ids) {
		placeholders, args := inClause(chunk)
		query := fmt.Sprintf("SELECT id, name FROM street_names WHERE id IN (%s)", placeholders)

		rows, err := r.store.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query street names: %w", err)
		}

		for rows.Next() {
			var id int64
			var name string
			if err := rows.Scan(&id, &name); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan street name: %w", err)
			}
			names[uint32(id)] = name
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("error iterating street names: %w", err)
		}
	}

	return names, nil
}

func (r *nameRepository) Upsert(ctx context.Context, names []models.StreetName) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO street_names (id, name) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare street name insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range names {
		if _, err := stmt.ExecContext(ctx, int64(n.ID), n.Name); err != nil {
			return fmt.Errorf("failed to upsert street name %d: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit street names: %w", err)
	}
	return nil
}

func (r *nameRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int
	if err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM street_names").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count street names: %w", err)
	}
	return count, nil
}
