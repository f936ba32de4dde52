package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/common/middleware"
	"table-booking-backend/internal/features/question/models"
	"table-booking-backend/internal/features/question/service"
)

type QuestionHandler struct {
	service service.QuestionService
	logger  *zap.Logger
}

func NewQuestionHandler(service service.QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *QuestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	questions := router.Group("/questions")
	{
		questions.GET("", h.list)
		questions.POST("", h.create)

		staff := questions.Group("")
		staff.Use(middleware.RequireAuth(), middleware.RequireStaff())
		{
			staff.PUT("/:id", h.update)
			staff.DELETE("/:id", h.delete)
		}
	}
}

// @Summary List questions
// @Description Returns published questions; staff additionally sees unmoderated entries
// @Tags questions
// @Produce json
// @Success 200 {array} models.Question "Questions"
// @Router /questions [get]
func (h *QuestionHandler) list(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	questions, err := h.service.List(c.Request.Context(), actor, false)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// @Summary Submit a question
// @Description Anyone can submit a question; staff may fill the answer and moderation flag directly, others get a pending moderation status
// @Tags questions
// @Accept json
// @Produce json
// @Param input body models.QuestionCreateRequest true "Question data"
// @Success 201 {object} models.QuestionCreateResponse "Created question and publication status"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Router /questions [post]
func (h *QuestionHandler) create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var input models.QuestionCreateRequest
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

// @Summary Update a question
// @Description Staff-only edit of a question's text, answer and moderation flag
// @Tags questions
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path int true "Question ID"
// @Param input body models.QuestionUpdateRequest true "Question fields"
// @Success 200 {object} models.Question "Updated question"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 403 {object} models.ErrorResponse "Staff only"
// @Failure 404 {object} models.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (h *QuestionHandler) update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	var input models.QuestionUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.service.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, question)
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security SessionToken
// @Param id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 403 {object} models.ErrorResponse "Staff only"
// @Failure 404 {object} models.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (h *QuestionHandler) delete(c *gin.Context) {
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

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
