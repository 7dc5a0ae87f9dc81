package handlers

import (
	"net/http"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/gin-gonic/gin"
)

// shoppingHandler handles HTTP requests related to shopping lists and their items.
type shoppingHandler struct {
	shoppingService portssvc.ShoppingSvcFacade
}

func newShoppingHandler(ss portssvc.ShoppingSvcFacade) *shoppingHandler {
	return &shoppingHandler{shoppingService: ss}
}

// RegisterShoppingRoutes registers routes related to shopping lists.
func RegisterShoppingRoutes(rg *gin.RouterGroup, shoppingService portssvc.ShoppingSvcFacade) {
	h := newShoppingHandler(shoppingService)

	lists := rg.Group("/shopping-lists")
	{
		lists.GET("", h.listShoppingLists)
		lists.POST("", h.createShoppingList)
		lists.GET("/:list_id", h.getShoppingList)
		lists.PUT("/:list_id", h.updateShoppingList)
		lists.DELETE("/:list_id", h.deleteShoppingList)
		lists.POST("/:list_id/duplicate", h.duplicateShoppingList)

		items := lists.Group("/:list_id/items")
		{
			items.POST("", h.addItem)
			items.PUT("/:item_id", h.updateItem)
			items.PATCH("/:item_id/checked", h.setItemChecked)
			items.DELETE("/:item_id", h.deleteItem)
		}
	}
}

func shoppingListResponse(list *domain.ShoppingList) dto.ShoppingListResponse {
	return dto.ToShoppingListResponse(list, aggregation.ComputeShoppingTotals(list.Items, list.Budget))
}

// listShoppingLists godoc
// @Summary List shopping lists
// @Description Retrieves the shopping lists of the user, newest first, with budget totals
// @Tags shopping
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token returned by the previous page"
// @Param   search query string false "Case-insensitive name filter; disables pagination"
// @Success 200 {object} dto.ListShoppingListsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list shopping lists"
// @Security BearerAuth
// @Router /shopping-lists [get]
func (h *shoppingHandler) listShoppingLists(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	summaries, nextToken, err := h.shoppingService.ListShoppingLists(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list shopping lists")
		return
	}

	resp := dto.ListShoppingListsResponse{
		Lists:     make([]dto.ShoppingListResponse, len(summaries)),
		NextToken: nextToken,
	}
	for i := range summaries {
		resp.Lists[i] = dto.ToShoppingListResponse(&summaries[i].List, summaries[i].Totals)
	}
	c.JSON(http.StatusOK, resp)
}

// createShoppingList godoc
// @Summary Create a shopping list
// @Tags shopping
// @Accept  json
// @Produce  json
// @Param   list body dto.CreateShoppingListRequest true "Name and budget"
// @Success 201 {object} dto.ShoppingListResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create shopping list"
// @Security BearerAuth
// @Router /shopping-lists [post]
func (h *shoppingHandler) createShoppingList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateShoppingListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.shoppingService.CreateShoppingList(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create shopping list")
		return
	}
	c.JSON(http.StatusCreated, shoppingListResponse(list))
}

// getShoppingList godoc
// @Summary Get a shopping list
// @Description Returns budget totals over every item, the referenced products and the matching items split into to-buy and purchased.
// @Tags shopping
// @Produce  json
// @Param   list_id path string true "Shopping list ID"
// @Param   search query string false "Case-insensitive product name or brand filter"
// @Param   category query string false "Product category, or all"
// @Param   purchasedOnly query bool false "Keep only checked items"
// @Param   sortField query string false "name, price, quantity or category" default(name)
// @Param   sortOrder query string false "asc or desc" default(asc)
// @Success 200 {object} dto.ShoppingListDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shopping list not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve shopping list"
// @Security BearerAuth
// @Router /shopping-lists/{list_id} [get]
func (h *shoppingHandler) getShoppingList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ShoppingViewParams
	if !bindQuery(c, &params) {
		return
	}

	view, err := h.shoppingService.GetShoppingList(c.Request.Context(), c.Param("list_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to retrieve shopping list")
		return
	}
	c.JSON(http.StatusOK, dto.ToShoppingListDetailResponse(view))
}

// updateShoppingList godoc
// @Summary Update a shopping list
// @Description Changes the name and/or budget; omitted fields are kept
// @Tags shopping
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Shopping list ID"
// @Param   list body dto.UpdateShoppingListRequest true "Fields to change"
// @Success 200 {object} dto.ShoppingListResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shopping list not found"
// @Failure 500 {object} ErrorResponse "Failed to update shopping list"
// @Security BearerAuth
// @Router /shopping-lists/{list_id} [put]
func (h *shoppingHandler) updateShoppingList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateShoppingListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.shoppingService.UpdateShoppingList(c.Request.Context(), c.Param("list_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update shopping list")
		return
	}
	c.JSON(http.StatusOK, shoppingListResponse(list))
}

// deleteShoppingList godoc
// @Summary Delete a shopping list
// @Tags shopping
// @Param   list_id path string true "Shopping list ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shopping list not found"
// @Failure 500 {object} ErrorResponse "Failed to delete shopping list"
// @Security BearerAuth
// @Router /shopping-lists/{list_id} [delete]
func (h *shoppingHandler) deleteShoppingList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.shoppingService.DeleteShoppingList(c.Request.Context(), c.Param("list_id"), userID); err != nil {
		respondError(c, err, "Failed to delete shopping list")
		return
	}
	c.Status(http.StatusNoContent)
}

// duplicateShoppingList godoc
// @Summary Duplicate a shopping list
// @Description Copies the list and its items; every copied item starts unchecked
// @Tags shopping
// @Produce  json
// @Param   list_id path string true "Shopping list ID"
// @Success 201 {object} dto.ShoppingListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shopping list not found"
// @Failure 500 {object} ErrorResponse "Failed to duplicate shopping list"
// @Security BearerAuth
// @Router /shopping-lists/{list_id}/duplicate [post]
func (h *shoppingHandler) duplicateShoppingList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	list, err := h.shoppingService.DuplicateShoppingList(c.Request.Context(), c.Param("list_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to duplicate shopping list")
		return
	}
	c.JSON(http.StatusCreated, shoppingListResponse(list))
}

// addItem godoc
// @Summary Add an item
// @Description Adds a catalog product to the list; a positive price becomes the product's last price
// @Tags shopping
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Shopping list ID"
// @Param   item body dto.ShoppingItemRequest true "Item"
// @Success 201 {object} dto.ShoppingItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown product"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Shopping list not found"
// @Failure 500 {object} ErrorResponse "Failed to add item"
// @Security BearerAuth
// @Router /shopping-lists/{list_id}/items [post]
func (h *shoppingHandler) addItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ShoppingItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.shoppingService.AddItem(c.Request.Context(), c.Param("list_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToShoppingItemResponse(item))
}

// updateItem godoc
// @Summary Replace an item
// @Tags shopping
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Shopping list ID"
// @Param   item_id path string true "Item ID"
// @Param   item body dto.ShoppingItemRequest true "Item"
// @Success 200 {object} dto.ShoppingItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown product"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to update item"
// @Security BearerAuth
// @Router /shopping-lists/{list_id}/items/{item_id} [put]
func (h *shoppingHandler) updateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ShoppingItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.shoppingService.UpdateItem(c.Request.Context(), c.Param("list_id"), c.Param("item_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, dto.ToShoppingItemResponse(item))
}

// setItemChecked godoc
// @Summary Check or uncheck an item
// @Tags shopping
// @Accept  json
// @Produce  json
// @Param   list_id path string true "Shopping list ID"
// @Param   item_id path string true "Item ID"
// @Param   checked body dto.SetCheckedRequest true "Checked flag"
// @Success 200 {object} dto.ShoppingItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to update item"
// @Security BearerAuth
// @Router /shopping-lists/{list_id}/items/{item_id}/checked [patch]
func (h *shoppingHandler) setItemChecked(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SetCheckedRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.shoppingService.SetItemChecked(c.Request.Context(), c.Param("list_id"), c.Param("item_id"), *req.Checked, userID)
	if err != nil {
		respondError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, dto.ToShoppingItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an item
// @Tags shopping
// @Param   list_id path string true "Shopping list ID"
// @Param   item_id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete item"
// @Security BearerAuth
// @Router /shopping-lists/{list_id}/items/{item_id} [delete]
func (h *shoppingHandler) deleteItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.shoppingService.DeleteItem(c.Request.Context(), c.Param("list_id"), c.Param("item_id"), userID); err != nil {
		respondError(c, err, "Failed to delete item")
		return
	}
	c.Status(http.StatusNoContent)
}
