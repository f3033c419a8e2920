package repository

import (
	"context"
	"math"

	"rpg_backend/internal/domain"

	"github.com/pkg/errors"
)

// ListInventory joins the character's stacks with their catalog names
func (s *Store) ListInventory(ctx context.Context, characterID uint) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	err := s.conn(ctx).Table("inventories").
		Select("inventories.item_code, items.name AS item_name, inventories.count").
		Joins("JOIN items ON items.code = inventories.item_code").
		Where("inventories.character_id = ?", characterID).
		Order("inventories.item_code asc").
		Scan(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "repository: list inventory")
	}
	return items, nil
}

// FindInventory loads one stack
func (s *Store) FindInventory(ctx context.Context, characterID uint, itemCode int) (*domain.InventoryEntry, error) {
	var entry domain.InventoryEntry
	err := s.conn(ctx).
		Where("character_id = ? AND item_code = ?", characterID, itemCode).
		First(&entry).Error
	if err != nil {
		return nil, notFound(err, domain.ErrInventoryEntryNotFound, "find inventory")
	}
	return &entry, nil
}

// AdjustInventory adds delta to a stack. Positive deltas create the stack when
// missing and fail with domain.ErrStackTooLarge when the count would overflow;
// negative deltas fail when the stack is missing or too small and delete it when
// it reaches zero. Callers hold the character lock.
func (s *Store) AdjustInventory(ctx context.Context, characterID uint, itemCode int, delta int) (int, error) {
	entry, err := s.FindInventory(ctx, characterID, itemCode)
	switch {
	case errors.Is(err, domain.ErrInventoryEntryNotFound):
		if delta <= 0 {
			return 0, domain.ErrInventoryEntryNotFound
		}
		entry = &domain.InventoryEntry{CharacterID: characterID, ItemCode: itemCode, Count: delta}
		if err := s.conn(ctx).Create(entry).Error; err != nil {
			return 0, errors.Wrap(err, "repository: create inventory")
		}
		return entry.Count, nil
	case err != nil:
		return 0, err
	}

	if delta > 0 && entry.Count > math.MaxInt-delta {
		return 0, domain.ErrStackTooLarge
	}
	remaining := entry.Count + delta // Fits: checked above
	switch {
	case remaining < 0:
		return 0, domain.ErrInventoryShort
	case remaining == 0:
		if err := s.conn(ctx).Delete(entry).Error; err != nil { // No zero-count rows
			return 0, errors.Wrap(err, "repository: delete inventory")
		}
	default:
		if err := s.conn(ctx).Model(entry).Update("count", remaining).Error; err != nil {
			return 0, errors.Wrap(err, "repository: update inventory")
		}
	}
	return remaining, nil
}

// DeleteInventory removes every stack held by the character
func (s *Store) DeleteInventory(ctx context.Context, characterID uint) error {
	err := s.conn(ctx).Where("character_id = ?", characterID).Delete(&domain.InventoryEntry{}).Error
	if err != nil {
		return errors.Wrap(err, "repository: delete inventory")
	}
	return nil
}
