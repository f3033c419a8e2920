package repository

import (
	"context"
	"database/sql"

	"rpg_backend/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements domain.Repository on top of GORM. A Store returned inside
// Transaction is bound to that transaction.
type Store struct {
	db      *gorm.DB
	txOpts  []*sql.TxOptions
	locking bool
}

var _ domain.Repository = (*Store)(nil)

// New wraps db. Transactions run at read-committed isolation and character rows
// are locked with SELECT ... FOR UPDATE, except on SQLite which supports neither
// and serializes writers on its own.
func New(db *gorm.DB) *Store {
	s := &Store{db: db}
	if db.Dialector.Name() != "sqlite" {
		s.txOpts = []*sql.TxOptions{{Isolation: sql.LevelReadCommitted}}
		s.locking = true
	}
	return s
}

// Transaction runs fn inside a database transaction
func (s *Store) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, txOpts: s.txOpts, locking: s.locking}) // Bind the store to tx
	}, s.txOpts...)
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store) forUpdate(ctx context.Context) *gorm.DB {
	q := s.conn(ctx)
	if s.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"}) // SELECT ... FOR UPDATE
	}
	return q
}

// notFound maps gorm.ErrRecordNotFound to sentinel and wraps anything else
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return errors.Wrap(err, "repository: "+op)
}

// duplicate maps a unique violation to sentinel and wraps anything else
func duplicate(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return errors.Wrap(err, "repository: "+op)
}
