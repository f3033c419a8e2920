package service

import (
	"context"
	"math"

	"rpg_backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ShopResult is the state after a purchase or sale
type ShopResult struct {
	Money    int64 // Character money after the trade
	ItemCode int
	Count    int // Units of the item left in the inventory
}

// Buy debits price*count and adds count units to the inventory
func (s *Service) Buy(ctx context.Context, characterID uint, itemCode, count int, requesterID uint) (*ShopResult, error) {
	if count < 1 {
		return nil, domain.ErrInvalidCount
	}
	var result *ShopResult
	var cost int64
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		character, err := ownedCharacter(ctx, tx, characterID, requesterID) // Locks the row
		if err != nil {
			return err
		}
		item, err := tx.FindItem(ctx, itemCode)
		if err != nil {
			return err
		}

		total := decimal.NewFromInt(item.Price).Mul(decimal.NewFromInt(int64(count)))
		if total.GreaterThan(decimal.NewFromInt(character.Money)) {
			return domain.ErrInsufficientFunds
		}
		cost = total.IntPart() // fits: bounded by money

		updated, err := tx.AdjustCharacter(ctx, characterID, domain.StatDelta{Money: -cost}) // Debit, guarded in SQL
		if err != nil {
			return err
		}
		held, err := tx.AdjustInventory(ctx, characterID, itemCode, count) // Creates the stack when missing
		if err != nil {
			return err
		}
		result = &ShopResult{Money: updated.Money, ItemCode: itemCode, Count: held}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"character_id": characterID,
		"item_code":    itemCode,
		"count":        count,
		"cost":         cost,
		"money":        result.Money,
	}).Info("Item purchased")
	return result, nil
}

// Sell removes count units from the inventory and credits
// floor(price*count*SellBackRate). Proceeds that would push money past the
// int64 range fail with domain.ErrMoneyOverflow.
func (s *Service) Sell(ctx context.Context, characterID uint, itemCode, count int, requesterID uint) (*ShopResult, error) {
	if count < 1 {
		return nil, domain.ErrInvalidCount
	}
	var result *ShopResult
	var proceeds int64
	err := s.repo.Transaction(ctx, func(tx domain.Repository) error {
		character, err := ownedCharacter(ctx, tx, characterID, requesterID) // Locks the row
		if err != nil {
			return err
		}
		item, err := tx.FindItem(ctx, itemCode)
		if err != nil {
			return err
		}
		entry, err := tx.FindInventory(ctx, characterID, itemCode)
		if err != nil {
			return err
		}
		if entry.Count < count {
			return domain.ErrInsufficientItems
		}
		if proceeds, err = s.sellPrice(item.Price, count, character.Money); err != nil {
			return err
		}

		held, err := tx.AdjustInventory(ctx, characterID, itemCode, -count) // Deletes the stack at zero
		if err != nil {
			return err
		}
		updated, err := tx.AdjustCharacter(ctx, characterID, domain.StatDelta{Money: proceeds}) // Credit
		if err != nil {
			return err
		}
		result = &ShopResult{Money: updated.Money, ItemCode: itemCode, Count: held}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"character_id": characterID,
		"item_code":    itemCode,
		"count":        count,
		"proceeds":     proceeds,
		"money":        result.Money,
	}).Info("Item sold")
	return result, nil
}

// sellPrice computes the proceeds of a sale, rejecting amounts that the
// character's balance cannot absorb
func (s *Service) sellPrice(price int64, count int, money int64) (int64, error) {
	proceeds := decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(int64(count))).
		Mul(s.opts.SellBackRate).
		Floor()
	if proceeds.GreaterThan(decimal.NewFromInt(math.MaxInt64 - money)) {
		return 0, domain.ErrMoneyOverflow
	}
	return proceeds.IntPart(), nil
}

// ListInventory returns the owner's inventory joined with item names
func (s *Service) ListInventory(ctx context.Context, characterID, requesterID uint) ([]domain.InventoryItem, error) {
	character, err := s.repo.FindCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !character.OwnedBy(requesterID) {
		return nil, domain.ErrNotOwner
	}
	return s.repo.ListInventory(ctx, characterID)
}
