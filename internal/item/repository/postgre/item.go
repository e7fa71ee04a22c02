package postgre

import (
	"context"
	"database/sql"

	"shareit/internal/item/repository"
	"shareit/internal/model"
)

const itemColumns = `id, name, description, available, user_id, COALESCE(request_id, 0)`

func scanItem(row *sql.Row, i *model.Item) error {
	return row.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID)
}

// CreateItem inserts a new Item row and returns the created entity.
// A zero RequestID is stored as NULL.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (name, description, available, user_id, request_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0))
		RETURNING ` + itemColumns

	var item model.Item
	row := r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Available, opt.OwnerID, opt.RequestID,
	)
	if err := scanItem(row, &item); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repository.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single Item by id.
// Returns zero-value Item (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	var item model.Item
	err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID), &item)
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repository.ErrFailedToGet
	}
	return item, nil
}

// ListItemsByOwner returns one owner's items ordered by id, paginated.
func (r *implRepository) ListItemsByOwner(ctx context.Context, opt repository.ListItemsByOwnerOptions) ([]model.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return r.queryItems(ctx, "ListItemsByOwner", query, opt.OwnerID, opt.Limit, opt.Offset)
}

// ListItemsByRequestID returns the items that answer an item request.
func (r *implRepository) ListItemsByRequestID(ctx context.Context, requestID int64) ([]model.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE request_id = $1
		ORDER BY id`

	return r.queryItems(ctx, "ListItemsByRequestID", query, requestID)
}

// SearchItems matches available items by name or description, ordered by id.
// A single query keeps name- and description-matches deduplicated.
func (r *implRepository) SearchItems(ctx context.Context, opt repository.SearchItemsOptions) ([]model.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return r.queryItems(ctx, "SearchItems", query, opt.Text, opt.Limit, opt.Offset)
}

// UpdateItem overwrites the mutable fields of an Item and returns the
// updated entity. Owner and request linkage never change.
func (r *implRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET name = $1, description = $2, available = $3
		WHERE id = $4
		RETURNING ` + itemColumns

	var item model.Item
	err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Available, opt.ID,
	), &item)
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repository.ErrFailedToUpdate
	}
	return item, nil
}

func (r *implRepository) queryItems(ctx context.Context, method, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &item.RequestID); err != nil {
			return nil, repository.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
