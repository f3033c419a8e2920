package service

import (
	"context"
	"errors"

	"rpg_backend/internal/domain"

	"github.com/sirupsen/logrus"
)

// Equip moves one unit of an item from the inventory onto the character and
// adds the item's modifiers to its stats.
func (s *Service) Equip(ctx context.Context, characterID uint, itemCode int, requesterID uint) (*domain.Character, error) {
	var character *domain.Character
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := ownedCharacter(ctx, tx, characterID, requesterID); err != nil { // Locks the row
			return err
		}
		item, err := tx.FindItem(ctx, itemCode)
		if err != nil {
			return err
		}
		if _, err := tx.FindEquipment(ctx, characterID, itemCode); err == nil {
			return domain.ErrAlreadyEquipped
		} else if !errors.Is(err, domain.ErrEquipmentNotFound) {
			return err
		}
		if _, err := tx.FindInventory(ctx, characterID, itemCode); errors.Is(err, domain.ErrInventoryEntryNotFound) {
			return domain.ErrNotInInventory
		} else if err != nil {
			return err
		}

		entry := &domain.EquipmentEntry{
			CharacterID: characterID,
			ItemCode:    itemCode,
			Health:      item.Health, // Snapshot of the applied modifiers
			Power:       item.Power,
		}
		if err := tx.CreateEquipment(ctx, entry); err != nil {
			return err
		}
		if _, err := tx.AdjustInventory(ctx, characterID, itemCode, -1); err != nil { // Consume one unit
			return err
		}
		character, err = tx.AdjustCharacter(ctx, characterID, domain.StatDelta{Health: entry.Health, Power: entry.Power})
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"character_id": characterID,
		"item_code":    itemCode,
		"health":       character.Health,
		"power":        character.Power,
	}).Info("Item equipped")
	return character, nil
}

// Unequip returns an equipped item to the inventory and subtracts the modifiers
// that were applied when it was equipped.
func (s *Service) Unequip(ctx context.Context, characterID uint, itemCode int, requesterID uint) (*domain.Character, error) {
	var character *domain.Character
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := ownedCharacter(ctx, tx, characterID, requesterID); err != nil {
			return err
		}
		if _, err := tx.FindItem(ctx, itemCode); err != nil {
			return err
		}
		entry, err := tx.FindEquipment(ctx, characterID, itemCode)
		if errors.Is(err, domain.ErrEquipmentNotFound) {
			return domain.ErrNotEquipped
		} else if err != nil {
			return err
		}

		if err := tx.DeleteEquipment(ctx, characterID, itemCode); err != nil {
			return err
		}
		if _, err := tx.AdjustInventory(ctx, characterID, itemCode, 1); err != nil { // Return one unit
			return err
		}
		character, err = tx.AdjustCharacter(ctx, characterID, domain.StatDelta{Health: -entry.Health, Power: -entry.Power}) // Revert the snapshot
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"character_id": characterID,
		"item_code":    itemCode,
		"health":       character.Health,
		"power":        character.Power,
	}).Info("Item unequipped")
	return character, nil
}

// ListEquipment returns the items equipped on a character in item code order
func (s *Service) ListEquipment(ctx context.Context, characterID uint) ([]domain.EquippedItem, error) {
	if _, err := s.repo.FindCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	return s.repo.ListEquipment(ctx, characterID)
}
