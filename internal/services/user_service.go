package services

import (
	"context"

	"phka/internal/models/db_models"
	"phka/internal/repositories"
	"phka/pkg/utils"
)

type UserServiceInterface interface {
	GetAllUsers(ctx context.Context) ([]db_models.User, error)
	GetUser(ctx context.Context, userID string) (*db_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (u *UserService) GetAllUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (u *UserService) GetUser(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	return user, nil
}
