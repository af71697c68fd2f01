package handlers

import (
	"net/http"
	"strconv"

	"chaletbook/models"
	"chaletbook/services/search"
	"chaletbook/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves catalog search plus the per-session memory of the last
// search form values.
type SearchHandler struct {
	Search *search.Service
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{Search: svc}
}

// SearchChalets runs a filtered catalog search. When the client sends a
// session id the form values are remembered for that browsing session.
func (h *SearchHandler) SearchChalets(c *gin.Context) {
	q := models.ChaletSearchQuery{SkiArea: c.Query("skiArea")}
	q.Guests, _ = strconv.Atoi(c.DefaultQuery("guests", "0"))
	q.MinPrice, _ = strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
	q.MaxPrice, _ = strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	nights, _ := strconv.Atoi(c.DefaultQuery("nights", "0"))
	params := models.SearchParams{
		SkiArea:        q.SkiArea,
		CheckInDisplay: c.Query("checkIn"),
		Nights:         nights,
		Guests:         q.Guests,
	}

	chalets, err := h.Search.Search(c.Request.Context(), c.Query("sessionId"), q, params)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "search failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chalets": chalets, "page": q.Page})
}

// LastSearch returns the remembered search form values for a session, or an
// empty object when there are none.
func (h *SearchHandler) LastSearch(c *gin.Context) {
	params, err := h.Search.LastParams(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load search session", "")
		return
	}
	if params == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, params)
}

// ClearSearch forgets the session's remembered search form values.
func (h *SearchHandler) ClearSearch(c *gin.Context) {
	if err := h.Search.ClearParams(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear search session", "")
		return
	}
	c.Status(http.StatusNoContent)
}
