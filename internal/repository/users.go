package repository

import (
	"context"

	"rpg_backend/internal/domain"

	"github.com/pkg/errors"
)

// CreateUser inserts user; a taken login id yields domain.ErrUserExists
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.conn(ctx).Create(user).Error; err != nil {
		return duplicate(err, domain.ErrUserExists, "create user")
	}
	return nil
}

// FindUserByID loads a user by primary key
func (s *Store) FindUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.conn(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "find user")
	}
	return &user, nil
}

// FindUserByLoginID loads a user by login id
func (s *Store) FindUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	var user domain.User
	if err := s.conn(ctx).Where("login_id = ?", loginID).First(&user).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "find user by login id")
	}
	return &user, nil
}

// SetUserRole changes the role of the user with the given login id
func (s *Store) SetUserRole(ctx context.Context, loginID, role string) error {
	res := s.conn(ctx).Model(&domain.User{}).Where("login_id = ?", loginID).Update("role", role)
	if res.Error != nil {
		return errors.Wrap(res.Error, "repository: set user role")
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero rows when the role is unchanged
		_, err := s.FindUserByLoginID(ctx, loginID)
		return err
	}
	return nil
}
