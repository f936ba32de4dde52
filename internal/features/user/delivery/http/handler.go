package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"table-booking-backend/internal/common/middleware"
	"table-booking-backend/internal/features/user/models"
	"table-booking-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
	logger  *zap.Logger
}

func NewUserHandler(service service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/telegram", h.loginTelegram)
		auth.POST("/logout", h.logout)
	}

	users := router.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
	}
}

// @Summary Register a new user
// @Description Creates a user account with email, display name and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.UserResponse "Created user"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *UserHandler) register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), &input)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary Log in
// @Description Opens a session for the given credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Credentials"
// @Success 200 {object} models.SessionResponse "Session token and user"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *UserHandler) login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.Login(c.Request.Context(), &input)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, session)
}

// @Summary Log in with Telegram
// @Description Opens a session for the Mini App user whose chat id is linked to an account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.TelegramLoginRequest true "Telegram init data"
// @Success 200 {object} models.SessionResponse "Session token and user"
// @Failure 401 {object} models.ErrorResponse "Invalid init data"
// @Failure 404 {object} models.ErrorResponse "No linked account"
// @Router /auth/telegram [post]
func (h *UserHandler) loginTelegram(c *gin.Context) {
	var input models.TelegramLoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.LoginTelegram(c.Request.Context(), input.InitData)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, session)
}

// @Summary Log out
// @Description Closes the current session
// @Tags auth
// @Produce json
// @Success 204 "Session closed"
// @Router /auth/logout [post]
func (h *UserHandler) logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		if cookie, err := c.Cookie("session"); err == nil {
			token = cookie
		}
	}
	if token == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.UserResponse "Profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.service.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security SessionToken
// @Param input body models.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.UserResponse "Updated profile"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/me [put]
func (h *UserHandler) updateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), user.ID, &input)
	if err != nil {
		middleware.SendError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, profile)
}
