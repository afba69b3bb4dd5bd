package middlewares

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/utils"
)

// VendorOwnership guards menu item mutation routes: the item must exist
// and belong to the authenticated vendor. The service layer re-checks
// ownership independently; both layers enforce it on purpose.
func VendorOwnership(repo *repository.MenuItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID := c.GetUint(CtxPrincipalID)

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			utils.RespondError(c, utils.NewBadRequest("Invalid menu item ID"))
			c.Abort()
			return
		}

		item, err := repo.FindByID(uint(id))
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}
		if item == nil {
			utils.RespondError(c, utils.NewNotFound("Menu item not found"))
			c.Abort()
			return
		}

		if item.VendorID != vendorID {
			utils.RespondError(c, utils.NewForbidden("You do not have permission to access this menu item"))
			c.Abort()
			return
		}

		c.Next()
	}
}
