package repository

import (
	"context"

	"rpg_backend/internal/domain"

	"github.com/pkg/errors"
)

// CreateItem inserts a catalog item; a taken code yields domain.ErrItemExists
func (s *Store) CreateItem(ctx context.Context, item *domain.Item) error {
	if err := s.conn(ctx).Create(item).Error; err != nil {
		return duplicate(err, domain.ErrItemExists, "create item")
	}
	return nil
}

// FindItem loads the full catalog entry for code
func (s *Store) FindItem(ctx context.Context, code int) (*domain.Item, error) {
	var item domain.Item
	if err := s.conn(ctx).Where("code = ?", code).First(&item).Error; err != nil {
		return nil, notFound(err, domain.ErrItemNotFound, "find item")
	}
	return &item, nil
}

// ListItems returns the summary projection of every item in code order
func (s *Store) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	items := []domain.ItemSummary{}
	err := s.conn(ctx).Model(&domain.Item{}).
		Select("code", "name", "price").
		Order("code asc").
		Scan(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "repository: list items")
	}
	return items, nil
}

// SaveItem writes every mutable column of an existing item. Callers check that
// the item exists; MySQL reports zero affected rows for no-op updates.
func (s *Store) SaveItem(ctx context.Context, item *domain.Item) error {
	err := s.conn(ctx).Model(&domain.Item{}).Where("code = ?", item.Code).Updates(map[string]any{
		"name":   item.Name,
		"health": item.Health,
		"power":  item.Power,
		"price":  item.Price,
	}).Error
	if err != nil {
		return errors.Wrap(err, "repository: save item")
	}
	return nil
}
