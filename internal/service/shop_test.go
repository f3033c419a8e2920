package service

import (
	"math"
	"sync"
	"testing"

	"rpg_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSell_RejectsProceedsPastMaxMoney(t *testing.T) {
	opts := testOptions()
	opts.StartingMoney = 10000
	f := newFixture(t, opts, nil)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")
	f.item(t, 1, 0, 0, 1)
	_, err := f.svc.Buy(f.ctx, hero.ID, 1, 1000, owner.ID)
	require.NoError(t, err)

	for _, price := range []int64{math.MaxInt64 / 10, math.MaxInt64 / 600} {
		_, err = f.svc.PatchItem(f.ctx, 1, domain.ItemPatch{Price: &price})
		require.NoError(t, err)

		_, err = f.svc.Sell(f.ctx, hero.ID, 1, 1000, owner.ID)
		assert.ErrorIs(t, err, domain.ErrMoneyOverflow, "price %d", price)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		assert.Equal(t, int64(9000), f.reload(t, hero.ID).Money)
		assert.Equal(t, map[int]int{1: 1000}, f.inventory(t, hero.ID, owner.ID))
	}

	sold, err := f.svc.Sell(f.ctx, hero.ID, 1, 1, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9000+(math.MaxInt64/600)*6/10), sold.Money)
	assert.Equal(t, 999, sold.Count)
}

func TestBuy_RejectsStackPastMaxCount(t *testing.T) {
	f := newFixture(t, testOptions(), nil)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")
	f.item(t, 1, 0, 0, 0)

	_, err := f.svc.Buy(f.ctx, hero.ID, 1, math.MaxInt, owner.ID)
	require.NoError(t, err)

	_, err = f.svc.Buy(f.ctx, hero.ID, 1, 1, owner.ID)
	assert.ErrorIs(t, err, domain.ErrStackTooLarge)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, map[int]int{1: math.MaxInt}, f.inventory(t, hero.ID, owner.ID))
}

func TestEarnMoney_RejectsOverflow(t *testing.T) {
	opts := testOptions()
	opts.StartingMoney = math.MaxInt64 - 10
	f := newFixture(t, opts, nil)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")

	_, err := f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	assert.ErrorIs(t, err, domain.ErrMoneyOverflow)
	assert.Equal(t, int64(math.MaxInt64-10), f.reload(t, hero.ID).Money)
}

// SQLite skips the row lock; the single pooled connection serializes the
// transactions instead. MySQL and Postgres rely on SELECT ... FOR UPDATE.
func TestConcurrentTradesOnOneCharacter(t *testing.T) {
	opts := testOptions()
	opts.StartingMoney = 10000
	f := newFixture(t, opts, nil)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")
	f.item(t, 1, 0, 0, 10)
	_, err := f.svc.Buy(f.ctx, hero.ID, 1, 20, owner.ID)
	require.NoError(t, err)

	const buys, sells, earns = 30, 10, 5
	var wg sync.WaitGroup
	errs := make(chan error, buys+sells+earns)
	run := func(n int, op func() error) {
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- op()
			}()
		}
	}
	run(buys, func() error {
		_, err := f.svc.Buy(f.ctx, hero.ID, 1, 1, owner.ID)
		return err
	})
	run(sells, func() error {
		_, err := f.svc.Sell(f.ctx, hero.ID, 1, 1, owner.ID)
		return err
	})
	run(earns, func() error {
		_, err := f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
		return err
	})
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	// 9800 after the opening buy, -10 per buy, +6 per sale, +1000 per earn
	assert.Equal(t, int64(9800-buys*10+sells*6+earns*1000), f.reload(t, hero.ID).Money)
	assert.Equal(t, map[int]int{1: 20 + buys - sells}, f.inventory(t, hero.ID, owner.ID))
}
