package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"table-booking-backend/internal/common/middleware"
	"table-booking-backend/internal/features/content/service"
)

type ContentHandler struct {
	service service.ContentService
	logger  *zap.Logger
}

func NewContentHandler(service service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	{
		content.GET("/home", h.homePage)
		content.GET("/about", h.aboutPage)

		staff := content.Group("")
		staff.Use(middleware.RequireAuth(), middleware.RequireStaff())
		{
			staff.POST("/reload", h.reload)
		}
	}
}

// @Summary Home page content
// @Description Texts, images and social links for the landing page; missing entries fall back to placeholders
// @Tags content
// @Produce json
// @Success 200 {object} models.PageContent "Page content"
// @Router /content/home [get]
func (h *ContentHandler) homePage(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.HomePage(c.Request.Context()))
}

// @Summary About page content
// @Tags content
// @Produce json
// @Success 200 {object} models.PageContent "Page content"
// @Router /content/about [get]
func (h *ContentHandler) aboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AboutPage(c.Request.Context()))
}

// @Summary Reload site parameters
// @Description Staff-only refresh of booking window and schedule parameters from the database
// @Tags content
// @Produce json
// @Security SessionToken
// @Success 204 "Reloaded"
// @Failure 403 {object} models.ErrorResponse "Staff only"
// @Router /content/reload [post]
func (h *ContentHandler) reload(c *gin.Context) {
	if err := h.service.Reload(c.Request.Context()); err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
