package dbrepo

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBRepository contains all individual repositories
type DBRepository struct {
	SaleRepo   *SaleRepo
	ClientRepo *ClientRepo
	UserRepo   *UserRepo
}

// NewDBRepository initializes all repositories with a shared connection pool
func NewDBRepository(db *pgxpool.Pool) *DBRepository {
	return &DBRepository{
		SaleRepo:   NewSaleRepo(db),
		ClientRepo: NewClientRepo(db),
		UserRepo:   NewUserRepo(db),
	}
}
