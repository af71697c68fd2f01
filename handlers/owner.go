package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"chaletbook/models"
	"chaletbook/services/owner"
	"chaletbook/utils"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the owner dashboard endpoints.
type OwnerHandler struct {
	Owners owner.Service
}

func NewOwnerHandler(svc owner.Service) *OwnerHandler {
	return &OwnerHandler{Owners: svc}
}

// Register creates an owner account.
func (h *OwnerHandler) Register(c *gin.Context) {
	var reg models.OwnerRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	acct, token, err := h.Owners.Register(c.Request.Context(), reg)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"owner": acct, "token": token})
}

// Login authenticates an owner.
func (h *OwnerHandler) Login(c *gin.Context) {
	var creds models.OwnerCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	acct, token, err := h.Owners.Authenticate(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": acct, "token": token})
}

// MyChalets lists the authenticated owner's chalets.
func (h *OwnerHandler) MyChalets(c *gin.Context) {
	ownerID := c.GetString("ownerID")
	chalets, err := h.Owners.Chalets(c.Request.Context(), ownerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load chalets", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chalets": chalets})
}

// ChaletBookings lists bookings for one of the authenticated owner's chalets.
func (h *OwnerHandler) ChaletBookings(c *gin.Context) {
	ownerID := c.GetString("ownerID")
	chaletID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be an integer"})
		return
	}
	bookings, err := h.Owners.ChaletBookings(c.Request.Context(), ownerID, chaletID)
	if err != nil {
		if errors.Is(err, owner.ErrNotChaletOwner) {
			c.JSON(http.StatusForbidden, gin.H{"message": "chalet does not belong to this owner"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
