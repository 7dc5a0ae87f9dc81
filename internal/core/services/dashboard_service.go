package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	planningRepo portsrepo.PlanningReader
	shoppingRepo portsrepo.ShoppingReader
	productRepo  portsrepo.ProductReader
}

func NewDashboardService(planningRepo portsrepo.PlanningReader, shoppingRepo portsrepo.ShoppingReader, productRepo portsrepo.ProductReader, options ...ServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{planningRepo: planningRepo, shoppingRepo: shoppingRepo, productRepo: productRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetDashboard loads the three snapshots concurrently and summarizes them.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	var (
		planning []domain.PlanningList
		shopping []domain.ShoppingList
		products []domain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if planning, err = s.planningRepo.ListAllPlanningLists(gctx, userID); err != nil {
			return fmt.Errorf("failed to load planning lists: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if shopping, err = s.shoppingRepo.ListAllShoppingLists(gctx, userID); err != nil {
			return fmt.Errorf("failed to load shopping lists: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if products, err = s.productRepo.ListProducts(gctx, userID); err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard data", slog.String("user_id", userID))
		return nil, err
	}

	summary := aggregation.SummarizeDashboard(planning, shopping, products)
	s.LogDebug(ctx, "Dashboard summarized",
		slog.Int("planning_lists", len(planning)),
		slog.Int("shopping_lists", len(shopping)),
		slog.Int("products", len(products)))
	return &summary, nil
}
