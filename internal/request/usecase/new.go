package usecase

import (
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of request.UseCase. It reads the
// user store for existence checks and the item store to attach the items
// offered in answer to each request.
type implUseCase struct {
	repo  repository.Repository
	items itemRepo.Repository
	users userRepo.Repository
	l     log.Logger
}

// New creates a new item request UseCase implementation.
func New(repo repository.Repository, items itemRepo.Repository, users userRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		items: items,
		users: users,
		l:     l,
	}
}
