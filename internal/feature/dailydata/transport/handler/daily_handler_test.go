package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_query_backend/internal/feature/dailydata/domain/entity"
)

// mockDailyDataUsecase は DailyDataUsecase インターフェースのモック実装です。
type mockDailyDataUsecase struct {
	GetRecentTradingDaysFunc func(ctx context.Context, tsCode string) ([]entity.DailyBar, error)
	GetLatestIndicatorsFunc  func(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error)
}

func (m *mockDailyDataUsecase) GetRecentTradingDays(ctx context.Context, tsCode string) ([]entity.DailyBar, error) {
	return m.GetRecentTradingDaysFunc(ctx, tsCode)
}

func (m *mockDailyDataUsecase) GetLatestIndicators(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error) {
	return m.GetLatestIndicatorsFunc(ctx, tsCode)
}

func newTestRouter(h *DailyDataHandler) *gin.Engine {
	router := gin.New()
	router.GET("/stocks/:ts_code/recent-7days", h.GetRecentTradingDaysHandler)
	router.GET("/stocks/:ts_code/technical-indicators/latest", h.GetLatestIndicatorsHandler)
	return router
}

func TestDailyDataHandler_GetRecentTradingDaysHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockFunc       func(ctx context.Context, tsCode string) ([]entity.DailyBar, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "成功: 日足を新しい順に返す",
			url:  "/stocks/000001.SZ/recent-7days",
			mockFunc: func(ctx context.Context, tsCode string) ([]entity.DailyBar, error) {
				assert.Equal(t, "000001.SZ", tsCode)
				return []entity.DailyBar{
					{TsCode: "000001.SZ", TradeDate: "2026-08-28", Open: 10, High: 11, Low: 9, Close: 10.5, Vol: 10000, Amount: 105000},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"ts_code":"000001.SZ","trade_date":"2026-08-28","open":10,"high":11,"low":9,"close":10.5,"vol":10000,"amount":105000}]`,
		},
		{
			name: "失敗: 日足が1件もなければ404",
			url:  "/stocks/000001.SZ/recent-7days",
			mockFunc: func(ctx context.Context, tsCode string) ([]entity.DailyBar, error) {
				return []entity.DailyBar{}, nil
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no recent daily data for 000001.SZ"}`,
		},
		{
			name: "失敗: ストレージ障害は500",
			url:  "/stocks/000001.SZ/recent-7days",
			mockFunc: func(ctx context.Context, tsCode string) ([]entity.DailyBar, error) {
				return nil, errors.New("driver: bad connection")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"driver: bad connection"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockDailyDataUsecase{GetRecentTradingDaysFunc: tt.mockFunc}
			router := newTestRouter(NewDailyDataHandler(mockUC))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestDailyDataHandler_GetLatestIndicatorsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockFunc       func(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "成功: 最新指標を返す",
			url:  "/stocks/000001.SZ/technical-indicators/latest",
			mockFunc: func(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error) {
				return &entity.TechnicalIndicator{
					TsCode: "000001.SZ", TradeDate: "2026-08-28",
					MA5: 10.2, MA10: 10.1, MA20: 9.9, RSI: 55.3,
					MACDDif: 0.12, MACDDea: 0.08, MACD: 0.08,
					BollUpper: 11.0, BollMid: 10.0, BollLower: 9.0,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ts_code":"000001.SZ","trade_date":"2026-08-28","ma5":10.2,"ma10":10.1,"ma20":9.9,"rsi":55.3,"macd_dif":0.12,"macd_dea":0.08,"macd":0.08,"boll_upper":11,"boll_mid":10,"boll_lower":9}`,
		},
		{
			name: "失敗: 指標がなければ404",
			url:  "/stocks/999999.SZ/technical-indicators/latest",
			mockFunc: func(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error) {
				return nil, nil
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no technical indicators for 999999.SZ"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockDailyDataUsecase{GetLatestIndicatorsFunc: tt.mockFunc}
			router := newTestRouter(NewDailyDataHandler(mockUC))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
