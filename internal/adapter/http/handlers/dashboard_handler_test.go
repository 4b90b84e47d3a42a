package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicos_xpto/internal/adapter/http/handlers/mocks"
	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/internal/usecase"
	"servicos_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.GetStats)

		stats := usecase.ComputeDashboardStats(nil, time.Now())
		stats.TotalOpen = 3
		stats.RevenueThisMonth = 1500
		uc.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["total_open"].(float64) != 3 {
			t.Fatalf("unexpected total_open: %v", body["total_open"])
		}
		if body["revenue_this_month_display"] != "R$ 1.500,00" {
			t.Fatalf("unexpected revenue display: %v", body["revenue_this_month_display"])
		}
		byStatus, ok := body["by_status"].([]any)
		if !ok || len(byStatus) != 6 {
			t.Fatalf("expected 6 status pairs, got %v", body["by_status"])
		}
		first := byStatus[0].(map[string]any)
		if first["status"] != string(entities.OrderStatusOpen) {
			t.Fatalf("expected OPEN first, got %v", first["status"])
		}
	})

	t.Run("store failure propagates as bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.GetStats)

		uc.EXPECT().GetStats(gomock.Any()).Return(entities.DashboardStats{}, &interfaces.StoreError{Op: "get_all", Err: errors.New("network")})

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
