package postgre

import (
	"context"

	"shareit/internal/item/repository"
	"shareit/internal/model"
)

// CreateComment inserts a new Comment row and returns the created entity.
func (r *implRepository) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	const query = `
		INSERT INTO comments (item_id, author_id, author_name, text, created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, item_id, author_id, author_name, text, created`

	var c model.Comment
	err := r.db.QueryRowContext(ctx, query,
		opt.ItemID, opt.AuthorID, opt.AuthorName, opt.Text, opt.Created,
	).Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repository.ErrFailedToInsert
	}
	return c, nil
}

// ListCommentsByItemID returns an item's comments in creation order.
func (r *implRepository) ListCommentsByItemID(ctx context.Context, itemID int64) ([]model.Comment, error) {
	const query = `
		SELECT id, item_id, author_id, author_name, text, created
		FROM comments
		WHERE item_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCommentsByItemID"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created); err != nil {
			return nil, repository.ErrFailedToList
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
