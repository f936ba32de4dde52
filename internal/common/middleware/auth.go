package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	usermodels "table-booking-backend/internal/features/user/models"
	userservice "table-booking-backend/internal/features/user/service"
)

const userKey = "user"

// sessionToken извлекает токен сессии из заголовка Authorization
// или из cookie "session"
func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := c.Cookie("session"); err == nil {
		return cookie
	}

	return ""
}

// Authenticate разрешает сессию в пользователя и кладёт его в контекст.
// Отсутствие сессии не прерывает запрос: часть маршрутов открыта анонимам.
func Authenticate(users userservice.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := users.GetBySession(c.Request.Context(), token)
		if err != nil {
			// Просроченная сессия равносильна её отсутствию
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAuth прерывает запрос без действующей сессии
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session required"})
			return
		}

		c.Next()
	}
}

// RequireStaff пропускает только персонал
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: session required"})
			return
		}

		if !user.CanManageQuestions() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}

		c.Next()
	}
}

// CurrentUser возвращает пользователя из контекста запроса, nil для анонима
func CurrentUser(c *gin.Context) *usermodels.User {
	value, exists := c.Get(userKey)
	if !exists {
		return nil
	}

	user, ok := value.(*usermodels.User)
	if !ok {
		return nil
	}

	return user
}
