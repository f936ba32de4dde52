package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/features/booking/models"
	usermodels "table-booking-backend/internal/features/user/models"
)

// stubService подменяет сервисный слой в тестах маршрутов
type stubService struct {
	verifyResult *models.VerificationResult
	verifyErr    error
	listResult   []*models.BookingResponse
}

func (s *stubService) Create(_ context.Context, _ *usermodels.User, _ *models.BookingCreateRequest) (*models.BookingCreateResponse, error) {
	return nil, nil
}

func (s *stubService) GetByID(_ context.Context, _ *usermodels.User, _ int64) (*models.BookingResponse, error) {
	return nil, nil
}

func (s *stubService) Update(_ context.Context, _ *usermodels.User, _ int64, _ *models.BookingUpdateRequest) (*models.BookingCreateResponse, error) {
	return nil, nil
}

func (s *stubService) Delete(_ context.Context, _ *usermodels.User, _ int64) error {
	return nil
}

func (s *stubService) ToggleActive(_ context.Context, _ *usermodels.User, _ int64) error {
	return nil
}

func (s *stubService) ListMine(_ context.Context, _ *usermodels.User) ([]*models.BookingResponse, error) {
	return s.listResult, nil
}

func (s *stubService) Context(_ context.Context) (*models.BookingContext, error) {
	return &models.BookingContext{}, nil
}

func (s *stubService) Verify(_ context.Context, _ string) (*models.VerificationResult, error) {
	return s.verifyResult, s.verifyErr
}

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewBookingHandler(svc, zap.NewNop())
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	handler.RegisterPublicRoutes(router)

	return router
}

func TestVerifyConfirmed(t *testing.T) {
	svc := &stubService{verifyResult: &models.VerificationResult{
		Status:    models.VerificationConfirmed,
		BookingID: 7,
	}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking_verification/abc123", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.VerificationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.VerificationConfirmed, result.Status)
	assert.Equal(t, int64(7), result.BookingID)
}

func TestVerifyExpiredReturnsGone(t *testing.T) {
	svc := &stubService{verifyResult: &models.VerificationResult{
		Status:    models.VerificationExpired,
		BookingID: 7,
	}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking_verification/abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestVerifyUnknownTokenReturnsNotFound(t *testing.T) {
	svc := &stubService{verifyErr: apperrors.NewTokenNotFoundError()}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking_verification/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmNoticeEchoesEmail(t *testing.T) {
	router := newRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/confirm_booking/guest@example.com", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "guest@example.com", body["email"])
}

func TestBookingsRequireSession(t *testing.T) {
	router := newRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContextRequiresSession(t *testing.T) {
	router := newRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/context", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListMineWithSession(t *testing.T) {
	svc := &stubService{listResult: []*models.BookingResponse{{ID: 1, UserID: 5}}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Подкладываем пользователя вместо полной цепочки аутентификации
	router.Use(func(c *gin.Context) {
		c.Set("user", &usermodels.User{ID: 5, Email: "guest@example.com"})
	})

	handler := NewBookingHandler(svc, zap.NewNop())
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var bookings []*models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
}
