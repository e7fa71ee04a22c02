package usecase

import (
	"shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase. It reads the
// item and user stores directly for availability, ownership and existence
// checks and to assemble detail responses.
type implUseCase struct {
	repo  repository.Repository
	items itemRepo.Repository
	users userRepo.Repository
	l     log.Logger
}

// New creates a new booking UseCase implementation.
func New(repo repository.Repository, items itemRepo.Repository, users userRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		items: items,
		users: users,
		l:     l,
	}
}
