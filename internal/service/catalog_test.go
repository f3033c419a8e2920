package service

import (
	"testing"
	"time"

	"rpg_backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCatalog_CreatePatchGet(t *testing.T) {
	f := newFixture(t, testOptions(), nil)
	f.item(t, 2, 1, 1, 20)
	f.item(t, 1, 10, 5, 100)

	_, err := f.svc.CreateItem(f.ctx, domain.Item{Code: 1, Name: "dup"})
	assert.ErrorIs(t, err, domain.ErrItemExists)

	items, err := f.svc.ListItems(f.ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Code)
	assert.Equal(t, 2, items[1].Code)

	name := "Sword"
	price := int64(150)
	patched, err := f.svc.PatchItem(f.ctx, 1, domain.ItemPatch{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Sword", patched.Name)
	assert.Equal(t, int64(150), patched.Price)
	assert.Equal(t, 10, patched.Health, "unpatched fields are kept")

	_, err = f.svc.PatchItem(f.ctx, 1, domain.ItemPatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyPatch)
	_, err = f.svc.PatchItem(f.ctx, 42, domain.ItemPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.svc.GetItem(f.ctx, 42)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCatalog_CacheIsInvalidatedOnWrite(t *testing.T) {
	mr, rdb := newRedis(t)
	f := newFixture(t, testOptions(), rdb)
	f.item(t, 1, 10, 5, 100)

	items, err := f.svc.ListItems(f.ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, mr.Exists(catalogListKey))

	item, err := f.svc.GetItem(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), item.Price)
	assert.True(t, mr.Exists(catalogItemKey(1)))

	f.item(t, 2, 0, 0, 5)
	assert.False(t, mr.Exists(catalogListKey))
	items, err = f.svc.ListItems(f.ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	price := int64(300)
	_, err = f.svc.PatchItem(f.ctx, 1, domain.ItemPatch{Price: &price})
	require.NoError(t, err)
	item, err = f.svc.GetItem(f.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(300), item.Price)
}

func TestCatalog_ServesFromCache(t *testing.T) {
	mr, rdb := newRedis(t)
	f := newFixture(t, testOptions(), rdb)
	require.NoError(t, mr.Set(catalogListKey, `[{"itemCode":7,"itemName":"cached","itemPrice":1}]`))

	items, err := f.svc.ListItems(f.ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cached", items[0].Name)
}

func TestEarnMoney_Cooldown(t *testing.T) {
	mr, rdb := newRedis(t)
	opts := testOptions()
	opts.EarnCooldown = time.Minute
	f := newFixture(t, opts, rdb)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")

	character, err := f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), character.Money)

	_, err = f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	assert.ErrorIs(t, err, domain.ErrEarnCooldown)
	assert.Equal(t, int64(1500), f.reload(t, hero.ID).Money)

	mr.FastForward(time.Minute + time.Second)
	character, err = f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), character.Money)
}
