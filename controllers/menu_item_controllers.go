package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/marketplace-app/middlewares"
	"github.com/yeremiapane/marketplace-app/services"
	"github.com/yeremiapane/marketplace-app/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type MenuItemController struct {
	Service *services.MenuItemService
}

func NewMenuItemController(service *services.MenuItemService) *MenuItemController {
	return &MenuItemController{Service: service}
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       int     `json:"price" binding:"required,gt=0"`
	Image       *string `json:"image" binding:"omitempty,uri"`
}

type UpdateMenuItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price" binding:"omitempty,gt=0"`
	Image       *string `json:"image" binding:"omitempty,uri"`
}

// CreateMenuItems inserts a batch of items for the authenticated vendor.
func (mc *MenuItemController) CreateMenuItems(c *gin.Context) {
	vendorID := c.GetUint(middlewares.CtxPrincipalID)
	req := middlewares.Body[[]CreateMenuItemRequest](c)

	inputs := make([]services.MenuItemInput, 0, len(*req))
	for _, item := range *req {
		inputs = append(inputs, services.MenuItemInput{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Image:       item.Image,
		})
	}

	items, err := mc.Service.CreateBatch(vendorID, inputs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu items created successfully", items)
}

// GetMenuItems lists one page of a vendor's items.
// Endpoint: GET /api/menu-items?vendor_id=<id>&page=<n>&limit=<n>
func (mc *MenuItemController) GetMenuItems(c *gin.Context) {
	vendorIDStr := c.Query("vendor_id")
	if vendorIDStr == "" {
		utils.RespondError(c, utils.NewBadRequest("Vendor ID is required"))
		return
	}
	vendorID, err := strconv.ParseUint(vendorIDStr, 10, 32)
	if err != nil {
		utils.RespondError(c, utils.NewBadRequest("Invalid vendor ID"))
		return
	}

	items, meta, err := mc.Service.ListByVendor(uint(vendorID), parsePagination(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondWithMeta(c, http.StatusOK, "Menu items fetched successfully", items, meta)
}

func (mc *MenuItemController) GetMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.NewBadRequest("Invalid menu item ID"))
		return
	}

	item, err := mc.Service.Get(uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item fetched successfully", item)
}

func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	vendorID := c.GetUint(middlewares.CtxPrincipalID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.NewBadRequest("Invalid menu item ID"))
		return
	}

	req := middlewares.Body[UpdateMenuItemRequest](c)

	item, err := mc.Service.Update(vendorID, uint(id), services.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated successfully", item)
}

func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	vendorID := c.GetUint(middlewares.CtxPrincipalID)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.NewBadRequest("Invalid menu item ID"))
		return
	}

	if err := mc.Service.Delete(vendorID, uint(id)); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted successfully", gin.H{"id": id})
}

// parsePagination clamps page to >= 1 and limit to 1..100 before the
// values reach the service.
func parsePagination(c *gin.Context) services.Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return services.Pagination{Page: page, Limit: limit}
}
