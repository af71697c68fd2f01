package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	bookingRepo "chaletbook/database/repository/booking"
	"chaletbook/models"
	"chaletbook/services/booking"
	"chaletbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var phonePattern = regexp.MustCompile(`^\d{11}$`)

// CheckAvailability is the stateless availability endpoint:
// GET /api/availability?chaletId=&checkIn=&checkOut= (ISO dates).
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	chaletID, err := strconv.Atoi(c.Query("chaletId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "chaletId must be an integer"})
		return
	}
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if !isoDatePattern.MatchString(checkIn) || !isoDatePattern.MatchString(checkOut) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "dates must be in YYYY-MM-DD format"})
		return
	}
	if checkOut <= checkIn {
		c.JSON(http.StatusBadRequest, gin.H{"message": booking.MsgCheckOutNotAfter})
		return
	}

	taken, err := h.Bookings.HasOverlap(c.Request.Context(), chaletID, checkIn, checkOut)
	if err != nil {
		h.Logger.Error("availability query failed", zap.Int("chaletID", chaletID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, booking.MsgServiceError, "")
		return
	}
	c.JSON(http.StatusOK, models.AvailabilityResponse{IsAvailable: !taken})
}

// CreateBooking is the direct booking-creation endpoint:
// POST /api/bookings {ChaletId, CheckInDate, CheckOutDate, UserPhoneNumber}.
// Responds 201 with the booking record; non-2xx responses carry a message
// clients surface verbatim.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	if !isoDatePattern.MatchString(req.CheckInDate) || !isoDatePattern.MatchString(req.CheckOutDate) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "dates must be in YYYY-MM-DD format"})
		return
	}
	if req.CheckOutDate <= req.CheckInDate {
		c.JSON(http.StatusBadRequest, gin.H{"message": booking.MsgCheckOutNotAfter})
		return
	}
	if !phonePattern.MatchString(req.UserPhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"message": booking.MsgInvalidPhone})
		return
	}

	chalet, err := h.Chalets.GetByID(req.ChaletID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "chalet not found"})
		return
	}

	nights := booking.Nights(utils.ToDisplayDate(req.CheckInDate), utils.ToDisplayDate(req.CheckOutDate))
	record := &models.Booking{
		ChaletID:        req.ChaletID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		UserPhoneNumber: req.UserPhoneNumber,
		Nights:          nights,
		TotalPrice:      float64(nights) * chalet.PricePerNight,
	}
	if err := h.Bookings.Create(c.Request.Context(), record); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		h.Logger.Error("booking creation failed", zap.Int("chaletID", req.ChaletID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, booking.MsgServiceError, "")
		return
	}
	c.JSON(http.StatusCreated, record)
}
