package dto

import (
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils"
)

// DashboardResponse is the dashboard summary with pre-formatted headline amounts.
type DashboardResponse struct {
	domain.DashboardSummary
	BalanceDisplay   string `json:"balanceDisplay"`
	RemainingDisplay string `json:"remainingDisplay"`
}

func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		DashboardSummary: *s,
		BalanceDisplay:   utils.FormatBRL(s.TotalBalance),
		RemainingDisplay: utils.FormatBRL(s.TotalRemaining),
	}
}
