package persistence

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type txKey struct{}

// withTx returns a context carrying the transaction handle
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFromContext returns the transaction bound to the context, if any,
// otherwise the fallback connection. Repositories resolve their handle
// through this so the same repository instance works inside and outside
// a unit of work.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

// GormUnitOfWork runs a function inside one database transaction. The
// transaction travels in the context, so every repository call made with
// the derived context joins it.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work over the given connection
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn in a transaction, committing on nil and rolling back on
// error or panic.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

var _ shared.UnitOfWork = (*GormUnitOfWork)(nil)
