package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/database"
)

type userRepository struct {
	db *database.Store
}

func NewUserRepository(db *database.Store) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if !r.db.Users.Insert(user.Email, *user) {
		return domainRepo.ErrDuplicateKey
	}
	return nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.db.Users.Has(email), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.db.Users.Get(email)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	users := r.db.Users.Scan(func(u entity.User) bool { return u.ID == id })
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
