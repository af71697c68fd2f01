package handlers

import (
	"errors"
	"net/http"

	bookingRepo "chaletbook/database/repository/booking"
	chaletRepo "chaletbook/database/repository/chalet"
	"chaletbook/services/booking"
	"chaletbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the guest booking surface: the stateful draft flow,
// the stateless availability check, and direct booking creation.
type BookingHandler struct {
	Flow     booking.FlowService
	Chalets  chaletRepo.ChaletRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(flow booking.FlowService, chalets chaletRepo.ChaletRepository, bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Flow: flow, Chalets: chalets, Bookings: bookings, Logger: logger}
}

// writeFlowError converts a flow error into the wire shape clients surface
// verbatim: {"message": ...} with an optional field for inline rendering.
func writeFlowError(c *gin.Context, err error) {
	var fe *booking.FlowError
	if !errors.As(err, &fe) {
		utils.JSONError(c, http.StatusInternalServerError, booking.MsgServiceError, "")
		return
	}
	body := gin.H{"message": fe.Message, "code": fe.Code}
	if fe.Field != "" {
		body["field"] = fe.Field
	}
	switch fe.Code {
	case booking.CodeValidation:
		c.JSON(http.StatusBadRequest, body)
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, body)
	case booking.CodeBadStep, booking.CodeRejected:
		c.JSON(http.StatusConflict, body)
	default:
		c.JSON(http.StatusInternalServerError, body)
	}
}

// StartDraft opens a fresh booking draft for a chalet.
func (h *BookingHandler) StartDraft(c *gin.Context) {
	var input struct {
		ChaletID int `json:"chaletId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Flow.StartDraft(c.Request.Context(), input.ChaletID)
	if err != nil {
		h.Logger.Warn("failed to start draft", zap.Int("chaletID", input.ChaletID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"message": "chalet not found"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetDraft returns the draft's current state.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.Flow.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// BeginDates moves the draft from the call-to-action into date selection.
func (h *BookingHandler) BeginDates(c *gin.Context) {
	draft, err := h.Flow.BeginDates(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetDates records the guest's date selection (display format).
func (h *BookingHandler) SetDates(c *gin.Context) {
	var input struct {
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Flow.SetDates(c.Request.Context(), c.Param("draftID"), input.CheckIn, input.CheckOut)
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CheckDraftAvailability runs the availability check for the draft's range.
func (h *BookingHandler) CheckDraftAvailability(c *gin.Context) {
	draft, result, err := h.Flow.CheckAvailability(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "result": result})
}

// SubmitDraft finalizes the booking from the contact step.
func (h *BookingHandler) SubmitDraft(c *gin.Context) {
	var input struct {
		PhoneNumber   string `json:"phoneNumber"`
		TermsAccepted bool   `json:"termsAccepted"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Flow.SubmitPhone(c.Request.Context(), c.Param("draftID"), input.PhoneNumber, input.TermsAccepted)
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// EditDates sends the draft from the contact step back to date selection.
func (h *BookingHandler) EditDates(c *gin.Context) {
	draft, err := h.Flow.EditDates(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ResetDraft clears a completed draft for a new booking.
func (h *BookingHandler) ResetDraft(c *gin.Context) {
	draft, err := h.Flow.ResetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}
