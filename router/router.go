package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/marketplace-app/controllers"
	"github.com/yeremiapane/marketplace-app/middlewares"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/services"
	"github.com/yeremiapane/marketplace-app/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Wiring: repository -> service -> controller
	vendorRepo := repository.NewVendorRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)

	vendorCtrl := controllers.NewVendorController(services.NewVendorService(vendorRepo))
	customerCtrl := controllers.NewCustomerController(services.NewCustomerService(customerRepo))
	menuItemCtrl := controllers.NewMenuItemController(services.NewMenuItemService(menuItemRepo, vendorRepo))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	authLimiter := middlewares.NewStrictRateLimiter()

	// Vendors
	api.POST("/vendors",
		middlewares.ValidateJSON[controllers.CreateVendorRequest](),
		vendorCtrl.CreateVendor)
	api.POST("/vendors/auth",
		authLimiter,
		middlewares.ValidateJSON[controllers.AuthenticateVendorRequest](),
		vendorCtrl.AuthenticateVendor)
	api.GET("/vendors", vendorCtrl.GetVendors)
	api.GET("/vendors/:id", vendorCtrl.GetVendor)
	api.PUT("/vendors/:id",
		middlewares.ValidateJSON[controllers.UpdateVendorRequest](),
		middlewares.RequireVendor(),
		vendorCtrl.UpdateVendor)

	// Customers
	api.POST("/customers",
		middlewares.ValidateJSON[controllers.CreateCustomerRequest](),
		customerCtrl.CreateCustomer)
	api.POST("/customers/auth",
		authLimiter,
		middlewares.ValidateJSON[controllers.AuthenticateCustomerRequest](),
		customerCtrl.AuthenticateCustomer)
	api.GET("/customers", customerCtrl.GetCustomers)
	api.GET("/customers/me", middlewares.RequireCustomer(), customerCtrl.GetMe)
	api.PUT("/customers/me",
		middlewares.ValidateJSON[controllers.UpdateCustomerRequest](),
		middlewares.RequireCustomer(),
		customerCtrl.UpdateMe)

	// Menu items
	api.POST("/menu-items",
		middlewares.ValidateJSON[[]controllers.CreateMenuItemRequest](),
		middlewares.RequireVendor(),
		menuItemCtrl.CreateMenuItems)
	api.GET("/menu-items", menuItemCtrl.GetMenuItems)
	api.GET("/menu-items/:id", menuItemCtrl.GetMenuItem)
	api.PUT("/menu-items/:id",
		middlewares.ValidateJSON[controllers.UpdateMenuItemRequest](),
		middlewares.RequireVendor(),
		middlewares.VendorOwnership(menuItemRepo),
		menuItemCtrl.UpdateMenuItem)
	api.DELETE("/menu-items/:id",
		middlewares.RequireVendor(),
		middlewares.VendorOwnership(menuItemRepo),
		menuItemCtrl.DeleteMenuItem)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.JSONResponse{
			Status:  false,
			Message: "Route not found",
		})
	})

	return r
}
