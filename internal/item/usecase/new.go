package usecase

import (
	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of item.UseCase. It reads the
// user and booking stores directly for ownership checks, the comment gate
// and the last/next booking attachments.
type implUseCase struct {
	repo     repository.Repository
	users    userRepo.Repository
	bookings bookingRepo.Repository
	l        log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, bookings bookingRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		users:    users,
		bookings: bookings,
		l:        l,
	}
}
