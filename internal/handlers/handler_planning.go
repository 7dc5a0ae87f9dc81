package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/SscSPs/fluxora_app/internal/middleware"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/gin-gonic/gin"
)

// planningHandler handles HTTP requests related to planning lists and their transactions.
type planningHandler struct {
	planningService portssvc.PlanningSvcFacade
}

func newPlanningHandler(ps portssvc.PlanningSvcFacade) *planningHandler {
	return &planningHandler{planningService: ps}
}

// RegisterPlanningRoutes registers routes related to planning lists.
func RegisterPlanningRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningSvcFacade) {
	h := newPlanningHandler(planningService)

	lists := rg.Group("/planning-lists")
	{
		lists.GET("", h.listPlanningLists)
		lists.POST("", h.createPlanningList)
		lists.GET("/:list_id", h.getPlanningList)
		lists.PUT("/:list_id", h.renamePlanningList)
		lists.DELETE("/:list_id", h.deletePlanningList)

		txns := lists.Group("/:list_id/transactions")
		{
			txns.POST("", h.addTransaction)
			txns.PUT("/:transaction_id", h.updateTransaction)
			txns.PATCH("/:transaction_id/paid", h.setTransactionPaid)
			txns.DELETE("/:transaction_id", h.deleteTransaction)
		}
	}
}

// transactionTotalsOf computes the totals of a list returned by a write, which carries its transactions.
func transactionTotalsOf(list *domain.PlanningList) domain.TransactionTotals {
	return aggregation.ComputeTransactionTotals(list.Transactions)
}

// listPlanningLists godoc
// @Summary List planning lists
// @Description Retrieves the planning lists of the user, newest first, with their totals
// @Tags planning
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token returned by the previous page"
// @Param   search query string false "Case-insensitive name filter; disables pagination"
// @Success 200 {object} dto.ListPlanningListsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list planning lists"
// @Security BearerAuth
// @Router /planning-lists [get]
func (h *planningHandler) listPlanningLists(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	summaries, nextToken, err := h.planningService.ListPlanningLists(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list planning lists")
		return
	}

	resp := dto.ListPlanningListsResponse{
		Lists:     make([]dto.PlanningListResponse, len(summaries)),
		NextToken: nextToken,
	}
	for i := range summaries {
		resp.Lists[i] = dto.ToPlanningListResponse(&summaries[i].List, summaries[i].Totals)
	}
	c.JSON(http.StatusOK, resp)
}

// createPlanningList godoc
// @Summary Create a planning list
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   list body dto.PlanningListRequest true "List name"
// @Success 201 {object} dto.PlanningListResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create planning list"
// @Security BearerAuth
// @Router /planning-lists [post]
func (h *planningHandler) createPlanningList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.PlanningListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.planningService.CreatePlanningList(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create planning list")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Planning list created", slog.String("list_id", list.ListID))
	c.JSON(http.StatusCreated, dto.ToPlanningListResponse(list, transactionTotalsOf(list)))
}

// getPlanningList godoc
// @Summary Get a planning list
// @Description Returns the list totals over every transaction and the transactions matching the view parameters.
// @Description Sorting by date orders by creation time; asc returns the oldest created first.
// @Tags planning
// @Produce  json
// @Param   list_id path string true "Planning list ID"
// @Param   tab query string false "all, income, expense or pending" default(all)
// @Param   search query string false "Case-insensitive description filter"
// @Param   category query string false "Transaction category ID"
// @Param   paidOnly query bool false "Keep only paid transactions"
// @Param   sortField query string false "date, amount or description" default(date)
// @Param   sortOrder query string false "asc or desc" default(desc)
// @Success 200 {object} dto.PlanningListDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Planning list not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve planning list"
// @Security BearerAuth
// @Router /planning-lists/{list_id} [get]
func (h *planningHandler) getPlanningList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.PlanningViewParams
	if !bindQuery(c, &params) {
		return
	}

	view, err := h.planningService.GetPlanningList(c.Request.Context(), c.Param("list_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to retrieve planning list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanningListDetailResponse(view))
}

// renamePlanningList godoc
// @Summary Rename a planning list
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Planning list ID"
// @Param   list body dto.PlanningListRequest true "New name"
// @Success 200 {object} dto.PlanningListResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Planning list not found"
// @Failure 500 {object} ErrorResponse "Failed to rename planning list"
// @Security BearerAuth
// @Router /planning-lists/{list_id} [put]
func (h *planningHandler) renamePlanningList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.PlanningListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.planningService.RenamePlanningList(c.Request.Context(), c.Param("list_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to rename planning list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanningListResponse(list, transactionTotalsOf(list)))
}

// deletePlanningList godoc
// @Summary Delete a planning list
// @Description Deletes the list and all of its transactions
// @Tags planning
// @Param   list_id path string true "Planning list ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Planning list not found"
// @Failure 500 {object} ErrorResponse "Failed to delete planning list"
// @Security BearerAuth
// @Router /planning-lists/{list_id} [delete]
func (h *planningHandler) deletePlanningList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.planningService.DeletePlanningList(c.Request.Context(), c.Param("list_id"), userID); err != nil {
		respondError(c, err, "Failed to delete planning list")
		return
	}
	c.Status(http.StatusNoContent)
}

// addTransaction godoc
// @Summary Add a transaction
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Planning list ID"
// @Param   transaction body dto.TransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or category not allowed for the type"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Planning list not found"
// @Failure 500 {object} ErrorResponse "Failed to add transaction"
// @Security BearerAuth
// @Router /planning-lists/{list_id}/transactions [post]
func (h *planningHandler) addTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.planningService.AddTransaction(c.Request.Context(), c.Param("list_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to add transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Replace a transaction
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Planning list ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   transaction body dto.TransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /planning-lists/{list_id}/transactions/{transaction_id} [put]
func (h *planningHandler) updateTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.planningService.UpdateTransaction(c.Request.Context(), c.Param("list_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// setTransactionPaid godoc
// @Summary Mark a transaction paid or unpaid
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Planning list ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   paid body dto.SetPaidRequest true "Paid flag"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /planning-lists/{list_id}/transactions/{transaction_id}/paid [patch]
func (h *planningHandler) setTransactionPaid(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SetPaidRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.planningService.SetTransactionPaid(c.Request.Context(), c.Param("list_id"), c.Param("transaction_id"), *req.IsPaid, userID)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags planning
// @Param   list_id path string true "Planning list ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /planning-lists/{list_id}/transactions/{transaction_id} [delete]
func (h *planningHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.planningService.DeleteTransaction(c.Request.Context(), c.Param("list_id"), c.Param("transaction_id"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
