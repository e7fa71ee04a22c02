package postgre

import (
	"context"
	"database/sql"

	"shareit/internal/model"
	"shareit/internal/request/repository"
)

const requestColumns = `id, description, user_id, created`

func scanRequest(row *sql.Row, rq *model.ItemRequest) error {
	return row.Scan(&rq.ID, &rq.Description, &rq.RequesterID, &rq.Created)
}

// CreateRequest inserts a new ItemRequest row and returns the created entity.
func (r *implRepository) CreateRequest(ctx context.Context, opt repository.CreateRequestOptions) (model.ItemRequest, error) {
	const query = `
		INSERT INTO requests (description, user_id, created)
		VALUES ($1, $2, $3)
		RETURNING ` + requestColumns

	var rq model.ItemRequest
	row := r.db.QueryRowContext(ctx, query, opt.Description, opt.RequesterID, opt.Created)
	if err := scanRequest(row, &rq); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.ItemRequest{}, repository.ErrFailedToInsert
	}
	return rq, nil
}

// GetOneRequest retrieves a single ItemRequest by id.
// Returns zero-value ItemRequest (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneRequest(ctx context.Context, opt repository.GetOneRequestOptions) (model.ItemRequest, error) {
	const query = `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	var rq model.ItemRequest
	err := scanRequest(r.db.QueryRowContext(ctx, query, opt.ID), &rq)
	if err == sql.ErrNoRows {
		return model.ItemRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.ItemRequest{}, repository.ErrFailedToGet
	}
	return rq, nil
}

// ListRequestsByRequester returns one user's requests, newest first,
// paginated.
func (r *implRepository) ListRequestsByRequester(ctx context.Context, opt repository.ListRequestsByRequesterOptions) ([]model.ItemRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE user_id = $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	return r.queryRequests(ctx, "ListRequestsByRequester", query, opt.RequesterID, opt.Limit, opt.Offset)
}

// ListRequestsExcluding returns requests posted by everyone except one user,
// oldest first, paginated.
func (r *implRepository) ListRequestsExcluding(ctx context.Context, opt repository.ListRequestsExcludingOptions) ([]model.ItemRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE user_id <> $1
		ORDER BY created
		LIMIT $2 OFFSET $3`

	return r.queryRequests(ctx, "ListRequestsExcluding", query, opt.RequesterID, opt.Limit, opt.Offset)
}

func (r *implRepository) queryRequests(ctx context.Context, method, query string, args ...any) ([]model.ItemRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var requests []model.ItemRequest
	for rows.Next() {
		var rq model.ItemRequest
		if err := rows.Scan(&rq.ID, &rq.Description, &rq.RequesterID, &rq.Created); err != nil {
			return nil, repository.ErrFailedToList
		}
		requests = append(requests, rq)
	}
	return requests, rows.Err()
}
