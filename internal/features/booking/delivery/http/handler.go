package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/common/middleware"
	"table-booking-backend/internal/features/booking/models"
	"table-booking-backend/internal/features/booking/service"
)

type BookingHandler struct {
	service service.BookingService
	logger  *zap.Logger
}

func NewBookingHandler(service service.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	bookings.Use(middleware.RequireAuth())
	{
		bookings.GET("/context", h.getContext)
		bookings.POST("", h.create)
		bookings.GET("", h.listMine)
		bookings.GET("/:id", h.getByID)
		bookings.PUT("/:id", h.update)
		bookings.DELETE("/:id", h.delete)
		bookings.POST("/:id/toggle", h.toggleActive)
	}
}

// RegisterPublicRoutes mounts the confirmation pages reachable from the
// e-mail without a session.
func (h *BookingHandler) RegisterPublicRoutes(router *gin.Engine) {
	router.GET("/booking_verification/:token", h.verify)
	router.GET("/confirm_booking/:email", h.confirmNotice)
}

// @Summary Create a booking
// @Description Creates an inactive booking and sends a confirmation link to the user's e-mail
// @Tags bookings
// @Accept json
// @Produce json
// @Security SessionToken
// @Param input body models.BookingCreateRequest true "Booking data"
// @Success 201 {object} models.BookingCreateResponse "Created booking and confirmation page path"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Table not found"
// @Router /bookings [post]
func (h *BookingHandler) create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var input models.BookingCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), actor, &input)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary List own bookings
// @Description Returns the current user's bookings ordered by date and start time
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Success 200 {array} models.BookingResponse "Bookings"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /bookings [get]
func (h *BookingHandler) listMine(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	bookings, err := h.service.ListMine(c.Request.Context(), actor)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Param id path int true "Booking ID"
// @Success 200 {object} models.BookingResponse "Booking"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Router /bookings/{id} [get]
func (h *BookingHandler) getByID(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	booking, err := h.service.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// @Summary Update a booking
// @Description Changes booking details; the booking is deactivated until confirmed again via a fresh e-mail link
// @Tags bookings
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path int true "Booking ID"
// @Param input body models.BookingUpdateRequest true "New booking data"
// @Success 200 {object} models.BookingCreateResponse "Updated booking and confirmation page path"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Router /bookings/{id} [put]
func (h *BookingHandler) update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	var input models.BookingUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Param id path int true "Booking ID"
// @Success 204 "Deleted"
// @Failure 403 {object} models.ErrorResponse "Not allowed"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Router /bookings/{id} [delete]
func (h *BookingHandler) delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate a booking
// @Description Marks the booking inactive without deleting it
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Param id path int true "Booking ID"
// @Success 204 "Deactivated"
// @Failure 403 {object} models.ErrorResponse "Not allowed"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Router /bookings/{id}/toggle [post]
func (h *BookingHandler) toggleActive(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	if err := h.service.ToggleActive(c.Request.Context(), actor, id); err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Booking form context
// @Description Returns tables, currently held slots and booking horizon settings for the booking form
// @Tags bookings
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.BookingContext "Form context"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /bookings/context [get]
func (h *BookingHandler) getContext(c *gin.Context) {
	context, err := h.service.Context(c.Request.Context())
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, context)
}

// @Summary Verify a booking token
// @Description Confirms the booking if the token is still within the confirmation window, otherwise removes the stale booking
// @Tags bookings
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} models.VerificationResult "Booking confirmed"
// @Failure 404 {object} models.ErrorResponse "Unknown token"
// @Failure 410 {object} models.ErrorResponse "Confirmation window elapsed"
// @Router /booking_verification/{token} [get]
func (h *BookingHandler) verify(c *gin.Context) {
	result, err := h.service.Verify(c.Request.Context(), c.Param("token"))
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	if result.Status == models.VerificationExpired {
		c.JSON(http.StatusGone, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Confirmation notice page
// @Description Page shown right after a booking is created, telling the user to check the given mailbox
// @Tags bookings
// @Produce json
// @Param email path string true "E-mail the confirmation link was sent to"
// @Success 200 {object} map[string]string "Notice"
// @Router /confirm_booking/{email} [get]
func (h *BookingHandler) confirmNotice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"email":   c.Param("email"),
		"message": "Письмо со ссылкой для подтверждения брони отправлено на указанный адрес",
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
