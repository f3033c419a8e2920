package service

import (
	"context"
	"fmt"
	"math"

	"rpg_backend/internal/domain"

	"github.com/sirupsen/logrus"
)

func earnCooldownKey(characterID uint) string {
	return fmt.Sprintf("game:earn:%d", characterID)
}

// EarnMoney credits the fixed earn amount to the character. With a cooldown
// configured, a second call within the window fails with domain.ErrEarnCooldown.
// The cooldown is only consumed by a credit that commits.
func (s *Service) EarnMoney(ctx context.Context, characterID, requesterID uint) (*domain.Character, error) {
	var character *domain.Character
	claimed := false
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := ownedCharacter(ctx, tx, characterID, requesterID) // Locks the row
		if err != nil {
			return err
		}
		if locked.Money > math.MaxInt64-s.opts.EarnAmount {
			return domain.ErrMoneyOverflow
		}
		character, err = tx.AdjustCharacter(ctx, characterID, domain.StatDelta{Money: s.opts.EarnAmount})
		if err != nil {
			return err
		}
		if s.opts.EarnCooldown <= 0 {
			return nil
		}
		// Claimed last so a failed credit never burns the cooldown
		ok, err := s.cache.Claim(ctx, earnCooldownKey(characterID), s.opts.EarnCooldown)
		if err != nil {
			return fmt.Errorf("earn cooldown: %w", err)
		}
		if !ok {
			return domain.ErrEarnCooldown // Rolls back the credit
		}
		claimed = true
		return nil
	})
	if err != nil {
		if claimed {
			// The commit failed after the claim was taken
			if derr := s.cache.Delete(ctx, earnCooldownKey(characterID)); derr != nil {
				logrus.WithFields(logrus.Fields{"character_id": characterID, "error": derr.Error()}).Warn("Cooldown release failed")
			}
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"character_id": characterID,
		"amount":       s.opts.EarnAmount,
		"money":        character.Money,
	}).Info("Money earned")
	return character, nil
}
