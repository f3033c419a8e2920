package service

import (
	"context"
	"errors"

	"rpg_backend/internal/domain"

	"github.com/sirupsen/logrus"
)

// CreateCharacter creates a character with the starting stats. Names are unique
// across all accounts, not per owner.
func (s *Service) CreateCharacter(ctx context.Context, ownerID uint, name string) (*domain.Character, error) {
	character := &domain.Character{
		UserID: ownerID,
		Name:   name,
		Health: s.opts.StartingHealth,
		Power:  s.opts.StartingPower,
		Money:  s.opts.StartingMoney,
	}
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.FindCharacterByName(ctx, name); err == nil {
			return domain.ErrCharacterNameTaken
		} else if !errors.Is(err, domain.ErrCharacterNotFound) {
			return err
		}
		return tx.CreateCharacter(ctx, character)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":        ownerID,
		"character_id":   character.ID,
		"character_name": character.Name,
	}).Info("Character created")
	return character, nil
}

// DeleteCharacter removes a character together with its inventory and equipment.
// Another account's character is reported as not found.
func (s *Service) DeleteCharacter(ctx context.Context, characterID, requesterID uint) error {
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := ownedCharacter(ctx, tx, characterID, requesterID); errors.Is(err, domain.ErrNotOwner) {
			return domain.ErrCharacterNotFound
		} else if err != nil {
			return err
		}
		if err := tx.DeleteAllEquipment(ctx, characterID); err != nil { // Equipment first, then stacks, then the row
			return err
		}
		if err := tx.DeleteInventory(ctx, characterID); err != nil {
			return err
		}
		return tx.DeleteCharacter(ctx, characterID)
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":      requesterID,
		"character_id": characterID,
	}).Info("Character deleted")
	return nil
}

// GetCharacter returns the projection visible to viewerID; 0 means anonymous
func (s *Service) GetCharacter(ctx context.Context, characterID, viewerID uint) (domain.CharacterView, error) {
	character, err := s.repo.FindCharacter(ctx, characterID)
	if err != nil {
		return domain.CharacterView{}, err
	}
	return character.View(viewerID), nil
}
