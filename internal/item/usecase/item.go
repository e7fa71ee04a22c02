package usecase

import (
	"context"
	"strings"
	"time"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/pagination"
	userRepo "shareit/internal/user/repository"
)

// Create lists a new item for a known owner.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (model.Item, error) {
	if err := uc.checkUser(ctx, input.OwnerID); err != nil {
		return model.Item{}, err
	}
	if input.Available == nil {
		return model.Item{}, item.ErrAvailabilityEmpty
	}
	if strings.TrimSpace(input.Name) == "" {
		return model.Item{}, item.ErrNameEmpty
	}
	if strings.TrimSpace(input.Description) == "" {
		return model.Item{}, item.ErrDescriptionEmpty
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Available:   *input.Available,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return model.Item{}, err
	}
	return created, nil
}

// Update applies a partial update after the ownership check: nil fields keep
// the stored value.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (model.Item, error) {
	existing, err := uc.checkOwner(ctx, input.OwnerID, input.ItemID)
	if err != nil {
		return model.Item{}, err
	}

	name := existing.Name
	if input.Name != nil {
		name = *input.Name
	}
	description := existing.Description
	if input.Description != nil {
		description = *input.Description
	}
	available := existing.Available
	if input.Available != nil {
		available = *input.Available
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ItemID,
		Name:        name,
		Description: description,
		Available:   available,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return model.Item{}, err
	}
	return updated, nil
}

// GetByID returns the item with comments attached. The owner additionally
// sees the last finished and next upcoming approved bookings.
func (uc *implUseCase) GetByID(ctx context.Context, viewerID, itemID int64) (item.ItemDetail, error) {
	found, err := uc.getItem(ctx, itemID)
	if err != nil {
		return item.ItemDetail{}, err
	}

	detail := item.ItemDetail{Item: found}

	detail.Comments, err = uc.repo.ListCommentsByItemID(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByID ListCommentsByItemID: %v", err)
		return item.ItemDetail{}, err
	}

	if found.OwnerID == viewerID {
		if err := uc.attachLastAndNext(ctx, &detail); err != nil {
			return item.ItemDetail{}, err
		}
	}
	return detail, nil
}

// ListByOwner pages through an owner's items, each with comments and
// last/next bookings attached.
func (uc *implUseCase) ListByOwner(ctx context.Context, ownerID int64, page pagination.Params) ([]item.ItemDetail, error) {
	if err := uc.checkUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListItemsByOwner(ctx, repo.ListItemsByOwnerOptions{
		OwnerID: ownerID,
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListItemsByOwner: %v", err)
		return nil, err
	}

	details := make([]item.ItemDetail, 0, len(items))
	for _, it := range items {
		detail := item.ItemDetail{Item: it}
		detail.Comments, err = uc.repo.ListCommentsByItemID(ctx, it.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ListByOwner ListCommentsByItemID: %v", err)
			return nil, err
		}
		if err := uc.attachLastAndNext(ctx, &detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// Search matches available items by free text. Blank text is an empty
// result, not an error.
func (uc *implUseCase) Search(ctx context.Context, text string, page pagination.Params) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	items, err := uc.repo.SearchItems(ctx, repo.SearchItemsOptions{
		Text:   text,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchItems: %v", err)
		return nil, err
	}
	return items, nil
}

// SaveComment stores feedback from a booker whose approved booking of the
// item has already ended.
func (uc *implUseCase) SaveComment(ctx context.Context, input item.CreateCommentInput) (model.Comment, error) {
	author, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: input.AuthorID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveComment GetOneUser: %v", err)
		return model.Comment{}, err
	}
	if author.ID == 0 {
		return model.Comment{}, item.ErrUserNotFound
	}
	if strings.TrimSpace(input.Text) == "" {
		return model.Comment{}, item.ErrCommentEmpty
	}

	now := time.Now()
	finished, err := uc.bookings.ListBookings(ctx, bookingRepo.ListBookingsOptions{
		BookerID:  input.AuthorID,
		ItemID:    input.ItemID,
		Status:    model.BookingStatusApproved,
		EndBefore: &now,
		Limit:     1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveComment ListBookings: %v", err)
		return model.Comment{}, err
	}
	if len(finished) == 0 {
		return model.Comment{}, item.ErrCommentNotAllowed
	}

	created, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		ItemID:     input.ItemID,
		AuthorID:   input.AuthorID,
		AuthorName: author.Name,
		Text:       input.Text,
		Created:    now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveComment CreateComment: %v", err)
		return model.Comment{}, err
	}
	return created, nil
}

// getItem fetches an item or fails with ErrItemNotFound.
func (uc *implUseCase) getItem(ctx context.Context, itemID int64) (model.Item, error) {
	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if found.ID == 0 {
		return model.Item{}, item.ErrItemNotFound
	}
	return found, nil
}

// checkUser fails with ErrUserNotFound for an unknown user id.
func (uc *implUseCase) checkUser(ctx context.Context, userID int64) error {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkUser GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return item.ErrUserNotFound
	}
	return nil
}

// checkOwner fetches an item and verifies ownership. A non-owner gets the
// not-found style ErrItemNotOwned.
func (uc *implUseCase) checkOwner(ctx context.Context, userID, itemID int64) (model.Item, error) {
	found, err := uc.getItem(ctx, itemID)
	if err != nil {
		return model.Item{}, err
	}
	if found.OwnerID != userID {
		return model.Item{}, item.ErrItemNotOwned
	}
	return found, nil
}

// attachLastAndNext decorates an owner-view detail with the most recently
// finished and the soonest upcoming approved bookings.
func (uc *implUseCase) attachLastAndNext(ctx context.Context, detail *item.ItemDetail) error {
	now := time.Now()

	last, err := uc.bookings.ListBookings(ctx, bookingRepo.ListBookingsOptions{
		ItemID:    detail.Item.ID,
		Status:    model.BookingStatusApproved,
		EndBefore: &now,
		OrderBy:   bookingRepo.OrderByEndDesc,
		Limit:     1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.attachLastAndNext last ListBookings: %v", err)
		return err
	}
	if len(last) > 0 {
		detail.LastBooking = &last[0]
	}

	next, err := uc.bookings.ListBookings(ctx, bookingRepo.ListBookingsOptions{
		ItemID:     detail.Item.ID,
		Status:     model.BookingStatusApproved,
		StartAfter: &now,
		OrderBy:    bookingRepo.OrderByStartAsc,
		Limit:      1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.attachLastAndNext next ListBookings: %v", err)
		return err
	}
	if len(next) > 0 {
		detail.NextBooking = &next[0]
	}
	return nil
}
