package pgsql

import (
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PlanningRepo: newPgxPlanningRepository(dbPool),
		ShoppingRepo: newPgxShoppingRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
