package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/marketplace-app/middlewares"
	"github.com/yeremiapane/marketplace-app/services"
	"github.com/yeremiapane/marketplace-app/utils"
)

type VendorController struct {
	Service *services.VendorService
}

func NewVendorController(service *services.VendorService) *VendorController {
	return &VendorController{Service: service}
}

type CreateVendorRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

type AuthenticateVendorRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateVendorRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func (vc *VendorController) CreateVendor(c *gin.Context) {
	req := middlewares.Body[CreateVendorRequest](c)

	vendor, err := vc.Service.Create(services.CreateVendorInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Vendor created successfully", vendor)
}

func (vc *VendorController) AuthenticateVendor(c *gin.Context) {
	req := middlewares.Body[AuthenticateVendorRequest](c)

	vendor, token, err := vc.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Vendor authenticated successfully", gin.H{
		"vendor": vendor,
		"token":  token,
	})
}

func (vc *VendorController) GetVendors(c *gin.Context) {
	vendors, err := vc.Service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Vendors fetched successfully", vendors)
}

func (vc *VendorController) GetVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.NewBadRequest("Invalid vendor ID"))
		return
	}

	vendor, err := vc.Service.Get(uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Vendor fetched successfully", vendor)
}

func (vc *VendorController) UpdateVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.NewBadRequest("Invalid vendor ID"))
		return
	}

	req := middlewares.Body[UpdateVendorRequest](c)

	vendor, err := vc.Service.Update(uint(id), services.UpdateVendorInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Vendor updated successfully", vendor)
}
