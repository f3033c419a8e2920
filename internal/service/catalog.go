package service

import (
	"context"
	"errors"
	"strconv"

	"rpg_backend/internal/domain"

	"github.com/sirupsen/logrus"
)

const catalogListKey = "catalog:items"

func catalogItemKey(code int) string {
	return "catalog:item:" + strconv.Itoa(code)
}

// CreateItem adds an item to the catalog
func (s *Service) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	if _, err := s.repo.FindItem(ctx, item.Code); err == nil {
		return nil, domain.ErrItemExists
	} else if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}
	if err := s.repo.CreateItem(ctx, &item); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx, item.Code)

	logrus.WithFields(logrus.Fields{
		"item_code": item.Code,
		"item_name": item.Name,
		"price":     item.Price,
	}).Info("Item created")
	return &item, nil
}

// PatchItem updates the given fields of an existing item
func (s *Service) PatchItem(ctx context.Context, code int, patch domain.ItemPatch) (*domain.Item, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	var item *domain.Item
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		if item, err = tx.FindItem(ctx, code); err != nil {
			return err
		}
		patch.Apply(item)
		return tx.SaveItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx, code)

	logrus.WithField("item_code", code).Info("Item updated")
	return item, nil
}

// ListItems returns the catalog summary, served from cache when possible
func (s *Service) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	var items []domain.ItemSummary
	if found, err := s.cache.Get(ctx, catalogListKey, &items); err == nil && found {
		return items, nil
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, catalogListKey, items)
	return items, nil
}

// GetItem returns the full catalog entry for code
func (s *Service) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	var item domain.Item
	key := catalogItemKey(code)
	if found, err := s.cache.Get(ctx, key, &item); err == nil && found {
		return &item, nil
	}
	found, err := s.repo.FindItem(ctx, code)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, found)
	return found, nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.opts.CacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}

func (s *Service) invalidateCatalog(ctx context.Context, code int) {
	if err := s.cache.Delete(ctx, catalogListKey, catalogItemKey(code)); err != nil {
		logrus.WithFields(logrus.Fields{"item_code": code, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}
