package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/marketplace-app/middlewares"
	"github.com/yeremiapane/marketplace-app/services"
	"github.com/yeremiapane/marketplace-app/utils"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{Service: service}
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type AuthenticateCustomerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	req := middlewares.Body[CreateCustomerRequest](c)

	customer, err := cc.Service.Create(services.CreateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer created successfully", customer)
}

func (cc *CustomerController) AuthenticateCustomer(c *gin.Context) {
	req := middlewares.Body[AuthenticateCustomerRequest](c)

	customer, token, err := cc.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer authenticated successfully", gin.H{
		"customer": customer,
		"token":    token,
	})
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customers fetched successfully", customers)
}

// GetMe returns the authenticated customer's own record.
func (cc *CustomerController) GetMe(c *gin.Context) {
	id := c.GetUint(middlewares.CtxPrincipalID)

	customer, err := cc.Service.Get(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer fetched successfully", customer)
}

func (cc *CustomerController) UpdateMe(c *gin.Context) {
	id := c.GetUint(middlewares.CtxPrincipalID)
	req := middlewares.Body[UpdateCustomerRequest](c)

	customer, err := cc.Service.Update(id, services.UpdateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated successfully", customer)
}
