package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitFailingRepo reports a failure after the wrapped transaction has run
type commitFailingRepo struct {
	domain.Repository
}

func (r commitFailingRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	if err := r.Repository.Transaction(ctx, fn); err != nil {
		return err
	}
	return errors.New("commit failed")
}

func TestEarnMoney_FailedCreditLeavesCooldownFree(t *testing.T) {
	mr, rdb := newRedis(t)
	opts := testOptions()
	opts.StartingMoney = math.MaxInt64 - 10
	opts.EarnCooldown = time.Minute
	f := newFixture(t, opts, rdb)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")

	_, err := f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	assert.ErrorIs(t, err, domain.ErrMoneyOverflow)
	assert.False(t, mr.Exists(earnCooldownKey(hero.ID)))
}

func TestEarnMoney_CommitFailureReleasesCooldown(t *testing.T) {
	mr, rdb := newRedis(t)
	opts := testOptions()
	opts.EarnCooldown = time.Minute
	f := newFixture(t, opts, rdb)
	owner := f.user(t, "owner")
	hero := f.character(t, owner, "Hero")

	svc := New(commitFailingRepo{f.store}, utils.NewRedisCache(rdb), opts)
	_, err := svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	require.EqualError(t, err, "commit failed")
	assert.False(t, mr.Exists(earnCooldownKey(hero.ID)))

	_, err = f.svc.EarnMoney(f.ctx, hero.ID, owner.ID)
	assert.NoError(t, err, "cooldown was released")
}
