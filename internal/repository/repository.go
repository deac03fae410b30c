package repository

import "gorm.io/gorm"

type Repository struct {
	DB         *gorm.DB
	Products   ProductRepo
	Warehouses WarehouseRepo
	Stocks     StockRepo
	Movements  MovementRepo
	Sales      SaleRepo
	Clients    ClientRepo
	Users      UserRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Products:   NewProductRepo(db),
		Warehouses: NewWarehouseRepo(db),
		Stocks:     NewStockRepo(db),
		Movements:  NewMovementRepo(db),
		Sales:      NewSaleRepo(db),
		Clients:    NewClientRepo(db),
		Users:      NewUserRepo(db),
	}
}

// WithTx runs fn with the whole repository bound to a single transaction.
// Any error rolls everything back.
func (r *Repository) WithTx(fn func(tx *Repository) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
