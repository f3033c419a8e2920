package repository

import (
	"context"
	"errors"
	"math"
	"testing"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *domain.Character) {
	t.Helper()
	s := New(testutil.NewDB(t))
	ctx := context.Background()

	user := &domain.User{LoginID: "abc123", Password: "hash", Name: "abc", Role: domain.RoleUser}
	require.NoError(t, s.CreateUser(ctx, user))
	character := &domain.Character{UserID: user.ID, Name: "Hero", Health: 500, Power: 100, Money: 500}
	require.NoError(t, s.CreateCharacter(ctx, character))
	require.NoError(t, s.CreateItem(ctx, &domain.Item{Code: 2, Name: "Shield", Health: 20, Price: 300}))
	require.NoError(t, s.CreateItem(ctx, &domain.Item{Code: 1, Name: "Sword", Health: 10, Power: 5, Price: 100}))
	return s, character
}

func TestStore_UsersAndDuplicates(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	user, err := s.FindUserByLoginID(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, character.UserID, user.ID)

	_, err = s.FindUserByLoginID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, s.SetUserRole(ctx, "abc123", domain.RoleAdmin))
	user, err = s.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.ErrorIs(t, s.SetUserRole(ctx, "nobody", domain.RoleAdmin), domain.ErrUserNotFound)
}

func TestStore_ListItemsInCodeOrder(t *testing.T) {
	s, _ := newStore(t)

	items, err := s.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemSummary{
		{Code: 1, Name: "Sword", Price: 100},
		{Code: 2, Name: "Shield", Price: 300},
	}, items)
}

func TestStore_SaveItem(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	item, err := s.FindItem(ctx, 1)
	require.NoError(t, err)
	item.Name = "Long Sword"
	item.Power = 9
	require.NoError(t, s.SaveItem(ctx, item))

	item, err = s.FindItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Long Sword", item.Name)
	assert.Equal(t, 9, item.Power)

	_, err = s.FindItem(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStore_AdjustInventory(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	_, err := s.AdjustInventory(ctx, character.ID, 1, -1)
	assert.ErrorIs(t, err, domain.ErrInventoryEntryNotFound, "decrement without a stack")

	remaining, err := s.AdjustInventory(ctx, character.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	remaining, err = s.AdjustInventory(ctx, character.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	_, err = s.AdjustInventory(ctx, character.ID, 1, -6)
	assert.ErrorIs(t, err, domain.ErrInventoryShort)

	remaining, err = s.AdjustInventory(ctx, character.ID, 1, -5)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	_, err = s.FindInventory(ctx, character.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInventoryEntryNotFound, "empty stacks are deleted")
}

func TestStore_AdjustInventoryRejectsOverflow(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	remaining, err := s.AdjustInventory(ctx, character.ID, 1, math.MaxInt-1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, remaining)

	remaining, err = s.AdjustInventory(ctx, character.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, remaining)

	_, err = s.AdjustInventory(ctx, character.ID, 1, 1)
	assert.ErrorIs(t, err, domain.ErrStackTooLarge)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	entry, err := s.FindInventory(ctx, character.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, entry.Count, "a rejected increment leaves the stack alone")
}

func TestStore_ListInventoryJoinsNames(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	_, err := s.AdjustInventory(ctx, character.ID, 2, 1)
	require.NoError(t, err)
	_, err = s.AdjustInventory(ctx, character.ID, 1, 4)
	require.NoError(t, err)

	items, err := s.ListInventory(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryItem{
		{ItemCode: 1, ItemName: "Sword", Count: 4},
		{ItemCode: 2, ItemName: "Shield", Count: 1},
	}, items)

	require.NoError(t, s.DeleteInventory(ctx, character.ID))
	items, err = s.ListInventory(ctx, character.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_Equipment(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateEquipment(ctx, &domain.EquipmentEntry{CharacterID: character.ID, ItemCode: 2, Health: 20}))
	require.NoError(t, s.CreateEquipment(ctx, &domain.EquipmentEntry{CharacterID: character.ID, ItemCode: 1, Health: 10, Power: 5}))

	items, err := s.ListEquipment(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.EquippedItem{{ItemCode: 1, ItemName: "Sword"}, {ItemCode: 2, ItemName: "Shield"}}, items)

	entry, err := s.FindEquipment(ctx, character.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Power)

	require.NoError(t, s.DeleteEquipment(ctx, character.ID, 1))
	assert.ErrorIs(t, s.DeleteEquipment(ctx, character.ID, 1), domain.ErrEquipmentNotFound)

	require.NoError(t, s.DeleteAllEquipment(ctx, character.ID))
	items, err = s.ListEquipment(ctx, character.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_AdjustCharacterGuardsMoney(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	updated, err := s.AdjustCharacter(ctx, character.ID, domain.StatDelta{Health: 10, Power: -5, Money: -200})
	require.NoError(t, err)
	assert.Equal(t, 510, updated.Health)
	assert.Equal(t, 95, updated.Power)
	assert.Equal(t, int64(300), updated.Money)

	_, err = s.AdjustCharacter(ctx, character.ID, domain.StatDelta{Money: -301})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	unchanged, err := s.FindCharacter(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), unchanged.Money)

	_, err = s.AdjustCharacter(ctx, 999, domain.StatDelta{Money: 1})
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.LockCharacter(ctx, character.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hero", locked.Name)

		_, err = tx.AdjustInventory(ctx, character.ID, 1, 3)
		require.NoError(t, err)
		_, err = tx.AdjustCharacter(ctx, character.ID, domain.StatDelta{Money: -300})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, err := s.FindCharacter(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), after.Money)
	_, err = s.FindInventory(ctx, character.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInventoryEntryNotFound)
}

func TestStore_DeleteCharacter(t *testing.T) {
	s, character := newStore(t)
	ctx := context.Background()

	found, err := s.FindCharacterByName(ctx, "Hero")
	require.NoError(t, err)
	assert.Equal(t, character.ID, found.ID)

	require.NoError(t, s.DeleteCharacter(ctx, character.ID))
	assert.ErrorIs(t, s.DeleteCharacter(ctx, character.ID), domain.ErrCharacterNotFound)
	_, err = s.LockCharacter(ctx, character.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}
