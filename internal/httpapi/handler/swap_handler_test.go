package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// swapTestRouter mounts the swap routes behind a stub auth layer that
// injects the given user id, mirroring what the JWT middleware does.
func swapTestRouter(swapSvc service.SwapService, feedbackSvc service.FeedbackService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	if userID != "" {
		api.Use(func(c *gin.Context) {
			c.Set("userID", userID)
		})
	}

	NewSwapHandler(swapSvc, feedbackSvc).RegisterRoutes(api)
	return router
}

func TestSwapHandler_CreateSwap(t *testing.T) {
	requesteeID := "5f8a2f4e-9a1b-4c3d-8e7f-6a5b4c3d2e1f"

	t.Run("created", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		swapSvc.On("Create", "user-1", requesteeID, "hi").Return(&dto.SwapRequestResponse{
			ID:     "swap-1",
			Status: "PENDING",
		}, nil)

		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-1")

		body := `{"requestee_id":"` + requesteeID + `","message":"hi"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "PENDING")
	})

	t.Run("self swap maps to 400", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		swapSvc.On("Create", "user-1", requesteeID, "").Return(nil, service.ErrSelfSwap)

		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps", strings.NewReader(`{"requestee_id":"`+requesteeID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed requestee id fails binding", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps", strings.NewReader(`{"requestee_id":"not-a-uuid"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		swapSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := swapTestRouter(new(MockSwapService), new(MockFeedbackService), "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps", strings.NewReader(`{"requestee_id":"`+requesteeID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSwapHandler_RespondToSwap(t *testing.T) {
	t.Run("forbidden for non-requestee", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		swapSvc.On("Respond", "swap-1", "user-1", "ACCEPTED").Return(service.ErrNotYourSwap)

		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/swaps/swap-1/status", strings.NewReader(`{"status":"ACCEPTED"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("status outside the enum fails binding", func(t *testing.T) {
		router := swapTestRouter(new(MockSwapService), new(MockFeedbackService), "user-2")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/swaps/swap-1/status", strings.NewReader(`{"status":"MAYBE"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		swapSvc.On("Respond", "swap-1", "user-2", "ACCEPTED").Return(nil)

		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-2")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/swaps/swap-1/status", strings.NewReader(`{"status":"ACCEPTED"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		swapSvc.AssertExpectations(t)
	})
}

func TestSwapHandler_WithdrawSwap(t *testing.T) {
	t.Run("unknown swap maps to 404", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		swapSvc.On("Withdraw", "nope", "user-1").Return(service.ErrSwapNotFound)

		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/swaps/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("decided swap maps to 400", func(t *testing.T) {
		swapSvc := new(MockSwapService)
		swapSvc.On("Withdraw", "swap-1", "user-1").Return(service.ErrSwapNotPending)

		router := swapTestRouter(swapSvc, new(MockFeedbackService), "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/swaps/swap-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSwapHandler_SubmitFeedback(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		feedbackSvc := new(MockFeedbackService)
		feedbackSvc.On("SubmitFeedback", "user-1", "swap-1", 5, "great").Return(nil)

		router := swapTestRouter(new(MockSwapService), feedbackSvc, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps/swap-1/feedback", strings.NewReader(`{"score":5,"comment":"great"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		feedbackSvc.AssertExpectations(t)
	})

	t.Run("second rating maps to 409", func(t *testing.T) {
		feedbackSvc := new(MockFeedbackService)
		feedbackSvc.On("SubmitFeedback", "user-1", "swap-1", 4, "").Return(service.ErrAlreadyRated)

		router := swapTestRouter(new(MockSwapService), feedbackSvc, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps/swap-1/feedback", strings.NewReader(`{"score":4}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("score above five fails binding", func(t *testing.T) {
		feedbackSvc := new(MockFeedbackService)
		router := swapTestRouter(new(MockSwapService), feedbackSvc, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/swaps/swap-1/feedback", strings.NewReader(`{"score":6}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		feedbackSvc.AssertNotCalled(t, "SubmitFeedback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
