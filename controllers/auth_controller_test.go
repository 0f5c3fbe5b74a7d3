package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "pharmacy-store/common/errors"
	"pharmacy-store/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockAuthService) Check(token string) (string, bool) {
	args := m.Called(token)
	return args.String(0), args.Bool(1)
}

func newAuthRouter(svc IAuthService) *gin.Engine {
	router := gin.New()
	ac := NewAuthController(svc, 86400)
	router.POST("/api/login", ac.Login)
	router.POST("/api/logout", ac.Logout)
	router.GET("/api/check-auth", ac.CheckAuth)
	return router
}

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 OK with session cookie", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "admin", "secret123").Return("token-abc", nil).Once()
		router := newAuthRouter(mockService)

		payload := `{"username": "admin", "password": "secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Login successful")
		assert.Contains(t, recorder.Body.String(), `"username":"admin"`)

		cookies := recorder.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
		assert.Equal(t, "token-abc", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 86400, cookies[0].MaxAge)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Credentials - 401 Unauthorized", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "admin", "wrong").
			Return("", apperrors.ErrInvalidCredentials).Once()
		router := newAuthRouter(mockService)

		payload := `{"username": "admin", "password": "wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid username or password")
		assert.Empty(t, recorder.Result().Cookies())
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Bad Request Body - 400 Bad Request", func(t *testing.T) {
		mockService := new(MockAuthService)
		router := newAuthRouter(mockService)

		payload := `{"username": "admin"}` // Missing password
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}

func TestLogoutController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 and cookie cleared", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Logout", "token-abc").Return(nil).Once()
		router := newAuthRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token-abc"})
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Logged out successfully")

		cookies := recorder.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - No cookie - 401", func(t *testing.T) {
		mockService := new(MockAuthService)
		router := newAuthRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockService.AssertNotCalled(t, "Logout")
	})
}

func TestCheckAuthController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Authenticated", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Check", "token-abc").Return("admin", true).Once()
		router := newAuthRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token-abc"})
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"authenticated": true, "username": "admin"}`, recorder.Body.String())
	})

	t.Run("No cookie", func(t *testing.T) {
		mockService := new(MockAuthService)
		router := newAuthRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"authenticated": false}`, recorder.Body.String())
	})

	t.Run("Expired or unknown token", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Check", "stale").Return("", false).Once()
		router := newAuthRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "stale"})
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"authenticated": false}`, recorder.Body.String())
	})
}
