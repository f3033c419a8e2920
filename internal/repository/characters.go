package repository

import (
	"context"

	"rpg_backend/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateCharacter inserts character; a taken name yields domain.ErrCharacterNameTaken
func (s *Store) CreateCharacter(ctx context.Context, character *domain.Character) error {
	if err := s.conn(ctx).Create(character).Error; err != nil {
		return duplicate(err, domain.ErrCharacterNameTaken, "create character")
	}
	return nil
}

// FindCharacter loads a character without locking it
func (s *Store) FindCharacter(ctx context.Context, id uint) (*domain.Character, error) {
	var character domain.Character
	if err := s.conn(ctx).First(&character, id).Error; err != nil {
		return nil, notFound(err, domain.ErrCharacterNotFound, "find character")
	}
	return &character, nil
}

// FindCharacterByName loads a character by its unique name
func (s *Store) FindCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	var character domain.Character
	if err := s.conn(ctx).Where("name = ?", name).First(&character).Error; err != nil {
		return nil, notFound(err, domain.ErrCharacterNotFound, "find character by name")
	}
	return &character, nil
}

// LockCharacter loads a character with a row lock held until the transaction ends
func (s *Store) LockCharacter(ctx context.Context, id uint) (*domain.Character, error) {
	var character domain.Character
	if err := s.forUpdate(ctx).First(&character, id).Error; err != nil {
		return nil, notFound(err, domain.ErrCharacterNotFound, "lock character")
	}
	return &character, nil
}

// AdjustCharacter applies delta in a single UPDATE guarded against negative money
func (s *Store) AdjustCharacter(ctx context.Context, id uint, delta domain.StatDelta) (*domain.Character, error) {
	if delta == (domain.StatDelta{}) {
		return s.FindCharacter(ctx, id) // Nothing to write
	}
	res := s.conn(ctx).Model(&domain.Character{}).
		Where("id = ? AND money + ? >= 0", id, delta.Money). // Money never goes negative
		Updates(map[string]any{
			"health": gorm.Expr("health + ?", delta.Health),
			"power":  gorm.Expr("power + ?", delta.Power),
			"money":  gorm.Expr("money + ?", delta.Money),
		})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "repository: adjust character")
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or the guard rejected the debit.
		if _, err := s.FindCharacter(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.ErrInsufficientFunds
	}
	return s.FindCharacter(ctx, id)
}

// DeleteCharacter removes the character row
func (s *Store) DeleteCharacter(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&domain.Character{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "repository: delete character")
	}
	if res.RowsAffected == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}
