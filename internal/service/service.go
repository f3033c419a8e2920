// Package service implements the game operations on top of a domain.Repository.
// Operations that touch more than one table run in a single transaction that
// starts by locking the character row.
package service

import (
	"context"
	"time"

	"rpg_backend/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Cache is the key/value store used for catalog reads and earn cooldowns
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Options tunes the game rules and credentials
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	StartingHealth int
	StartingPower  int
	StartingMoney  int64

	EarnAmount   int64
	EarnCooldown time.Duration
	SellBackRate decimal.Decimal

	CacheTTL time.Duration
}

// DefaultOptions returns the stock game rules
func DefaultOptions() Options {
	return Options{
		TokenTTL:       2 * time.Hour,
		BcryptCost:     bcrypt.DefaultCost,
		StartingHealth: 500,
		StartingPower:  100,
		StartingMoney:  10000,
		EarnAmount:     1000,
		SellBackRate:   decimal.RequireFromString("0.6"),
		CacheTTL:       time.Minute,
	}
}

// Service implements every game operation
type Service struct {
	repo  domain.Repository
	cache Cache
	opts  Options
}

// New builds a Service
func New(repo domain.Repository, cache Cache, opts Options) *Service {
	return &Service{repo: repo, cache: cache, opts: opts}
}

// ownedCharacter locks the character and checks that requesterID owns it
func ownedCharacter(ctx context.Context, tx domain.Repository, characterID, requesterID uint) (*domain.Character, error) {
	character, err := tx.LockCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !character.OwnedBy(requesterID) {
		return nil, domain.ErrNotOwner
	}
	return character, nil
}
