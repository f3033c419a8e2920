package service

import (
	"context"
	"errors"
	"fmt"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the sign-up payload
type RegisterInput struct {
	LoginID        string
	Password       string
	VerifyPassword string
	Name           string
}

// Register creates an account. The display name defaults to the login id.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if _, err := s.repo.FindUserByLoginID(ctx, in.LoginID); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if in.Password != in.VerifyPassword {
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	name := in.Name
	if name == "" {
		name = in.LoginID
	}
	user := &domain.User{LoginID: in.LoginID, Password: string(hash), Name: name, Role: domain.RoleUser}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"login_id": user.LoginID,
	}).Info("User registered")
	return user, nil
}

// Login verifies credentials and returns a signed access token
func (s *Service) Login(ctx context.Context, loginID, password string) (string, error) {
	user, err := s.repo.FindUserByLoginID(ctx, loginID)
	if err != nil {
		return "", err
	}
	// bcrypt compares in constant time
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrWrongPassword
	}
	token, err := utils.GenerateJWT(user.LoginID, s.opts.JWTSecret, s.opts.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := utils.ParseJWT(token, s.opts.JWTSecret)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := s.repo.FindUserByLoginID(ctx, claims.LoginID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidToken
	}
	return user, err
}

// FindUser loads a user by primary key
func (s *Service) FindUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, id)
}

// PromoteAdmin grants the admin role to the account with loginID
func (s *Service) PromoteAdmin(ctx context.Context, loginID string) error {
	if err := s.repo.SetUserRole(ctx, loginID, domain.RoleAdmin); err != nil {
		return err
	}
	logrus.WithField("login_id", loginID).Info("User promoted to admin")
	return nil
}
