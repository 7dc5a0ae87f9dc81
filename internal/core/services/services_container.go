package services

import (
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo, options...)
	container.Planning = NewPlanningService(repos.PlanningRepo, options...)
	container.Shopping = NewShoppingService(repos.ShoppingRepo, repos.ProductRepo, options...)
	container.Dashboard = NewDashboardService(repos.PlanningRepo, repos.ShoppingRepo, repos.ProductRepo, options...)
	container.User = NewUserService(repos.UserRepo, options...)

	// Token handling goes through the user service for refresh token storage
	container.TokenService = NewTokenService(cfg, container.User, options...)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
