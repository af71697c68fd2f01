package handlers

import (
	"net/http"
	"strconv"

	chaletRepo "chaletbook/database/repository/chalet"
	"chaletbook/models"
	"chaletbook/services/booking"
	"chaletbook/utils"

	"github.com/gin-gonic/gin"
)

// ChaletHandler serves the public chalet catalog.
type ChaletHandler struct {
	Chalets chaletRepo.ChaletRepository
}

func NewChaletHandler(chalets chaletRepo.ChaletRepository) *ChaletHandler {
	return &ChaletHandler{Chalets: chalets}
}

// ListChalets returns a catalog page.
func (h *ChaletHandler) ListChalets(c *gin.Context) {
	q := models.ChaletSearchQuery{
		SkiArea: c.Query("skiArea"),
	}
	q.Guests, _ = strconv.Atoi(c.DefaultQuery("guests", "0"))
	q.MinPrice, _ = strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
	q.MaxPrice, _ = strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	chalets, err := h.Chalets.Search(q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load chalets", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chalets": chalets, "page": q.Page})
}

// GetChalet returns one listing.
func (h *ChaletHandler) GetChalet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be an integer"})
		return
	}
	chalet, err := h.Chalets.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "chalet not found"})
		return
	}
	c.JSON(http.StatusOK, chalet)
}

// QuoteStay returns the informative nights/total projection for a range:
// GET /api/chalets/:id/quote?checkIn=DD/MM/YYYY&checkOut=DD/MM/YYYY.
// The projection is display-only; the total charged is computed at creation.
func (h *ChaletHandler) QuoteStay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be an integer"})
		return
	}
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if !utils.IsValidDisplayDate(checkIn) || !utils.IsValidDisplayDate(checkOut) {
		c.JSON(http.StatusBadRequest, gin.H{"message": booking.MsgInvalidDateFormat})
		return
	}

	chalet, err := h.Chalets.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "chalet not found"})
		return
	}
	quote := booking.QuoteStay(chalet, checkIn, checkOut)
	c.JSON(http.StatusOK, gin.H{
		"quote":       quote,
		"minCheckOut": booking.MinCheckOut(utils.ToISODate(checkIn)),
	})
}
