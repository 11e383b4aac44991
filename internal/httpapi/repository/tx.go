package repository

import (
	"gorm.io/gorm"
)

// Repos bundles the repositories re-bound to a single transaction.
type Repos struct {
	Users   UserRepository
	Swaps   SwapRequestRepository
	Ratings RatingRepository
}

// TxManager runs fn inside one database transaction: everything fn does
// through the passed repos commits together or not at all.
type TxManager interface {
	RunInTx(fn func(repos Repos) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) RunInTx(fn func(repos Repos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(Repos{
			Users:   NewUserRepository(tx),
			Swaps:   NewSwapRequestRepository(tx),
			Ratings: NewRatingRepository(tx),
		})
	})
}
