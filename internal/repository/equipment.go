package repository

import (
	"context"

	"rpg_backend/internal/domain"

	"github.com/pkg/errors"
)

// ListEquipment joins the character's equipped items with their catalog names
func (s *Store) ListEquipment(ctx context.Context, characterID uint) ([]domain.EquippedItem, error) {
	items := []domain.EquippedItem{}
	err := s.conn(ctx).Table("equipments").
		Select("equipments.item_code, items.name AS item_name").
		Joins("JOIN items ON items.code = equipments.item_code").
		Where("equipments.character_id = ?", characterID).
		Order("equipments.item_code asc").
		Scan(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "repository: list equipment")
	}
	return items, nil
}

// FindEquipment loads one equipment entry
func (s *Store) FindEquipment(ctx context.Context, characterID uint, itemCode int) (*domain.EquipmentEntry, error) {
	var entry domain.EquipmentEntry
	err := s.conn(ctx).
		Where("character_id = ? AND item_code = ?", characterID, itemCode).
		First(&entry).Error
	if err != nil {
		return nil, notFound(err, domain.ErrEquipmentNotFound, "find equipment")
	}
	return &entry, nil
}

// CreateEquipment inserts entry; an existing (character, item) pair yields domain.ErrAlreadyEquipped
func (s *Store) CreateEquipment(ctx context.Context, entry *domain.EquipmentEntry) error {
	if err := s.conn(ctx).Create(entry).Error; err != nil {
		return duplicate(err, domain.ErrAlreadyEquipped, "create equipment")
	}
	return nil
}

// DeleteEquipment removes one equipment entry
func (s *Store) DeleteEquipment(ctx context.Context, characterID uint, itemCode int) error {
	res := s.conn(ctx).
		Where("character_id = ? AND item_code = ?", characterID, itemCode).
		Delete(&domain.EquipmentEntry{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "repository: delete equipment")
	}
	if res.RowsAffected == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

// DeleteAllEquipment removes every equipment entry of the character
func (s *Store) DeleteAllEquipment(ctx context.Context, characterID uint) error {
	err := s.conn(ctx).Where("character_id = ?", characterID).Delete(&domain.EquipmentEntry{}).Error
	if err != nil {
		return errors.Wrap(err, "repository: delete equipment")
	}
	return nil
}
