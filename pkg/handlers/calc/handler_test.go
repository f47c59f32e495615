package calc

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/livecost/pkg/models/api"
	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Calculate(ctx context.Context, counters domain.InputCounters) (domain.CalculationResult, error) {
	args := m.Called(ctx, counters)
	return args.Get(0).(domain.CalculationResult), args.Error(1)
}

func sampleResult() domain.CalculationResult {
	breakdown := domain.CostBreakdown{
		TotalCost:       722,
		RegisterCost:    797,
		PayCost:         1097,
		ValueTotalCost:  1097,
		CostPerFan:      1.44,
		CostPerRegister: 7.97,
		CostPerPay:      109.7,
		CostPerValue:    548.5,
	}
	return domain.CalculationResult{
		Breakdown: breakdown,
		Report: domain.DailyReport{
			Date:      time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
			Timestamp: time.Date(2026, 10, 16, 6, 3, 5, 0, time.UTC),
			Counters:  domain.InputCounters{FansCount: 500, RegisterCount: 100, PayCount: 10},
			Breakdown: breakdown,
			Warnings: []domain.Warning{{
				Metric:  domain.MetricCostPerPay,
				Message: "⚠️ 单个付费成本过高: ¥109.7 > ¥100",
			}},
			Analysis:      []domain.Analysis{{Kind: domain.AnalysisPoor, Message: "❌ 付费成本偏高，建议提升用户付费意愿"}},
			FormattedText: "📊 直播成本计算日报 - 2026/10/16\n",
		},
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		setupMock      func(*mockService)
		expectedStatus int
		expectedError  *api.ErrorResponse
	}{
		{
			name:        "successful json request",
			contentType: "application/json",
			body:        `{"fans_count":500,"register_count":100,"pay_count":10}`,
			setupMock: func(m *mockService) {
				m.On("Calculate", mock.Anything, domain.InputCounters{FansCount: 500, RegisterCount: 100, PayCount: 10}).
					Return(sampleResult(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "successful form request",
			contentType: "application/x-www-form-urlencoded",
			body:        "fans_count=500&register_count=100&pay_count=10",
			setupMock: func(m *mockService) {
				m.On("Calculate", mock.Anything, domain.InputCounters{FansCount: 500, RegisterCount: 100, PayCount: 10}).
					Return(sampleResult(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing fans count",
			contentType:    "application/json",
			body:           `{"account_count":2}`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &api.ErrorResponse{Error: "上粉数量必须大于0", Detail: "fans_count 参数无效"},
		},
		{
			name:           "zero fans count",
			contentType:    "application/json",
			body:           `{"fans_count":0}`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &api.ErrorResponse{Error: "上粉数量必须大于0", Detail: "fans_count 参数无效"},
		},
		{
			name:           "empty body",
			contentType:    "application/json",
			body:           "",
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &api.ErrorResponse{Error: "上粉数量必须大于0", Detail: "fans_count 参数无效"},
		},
		{
			name:           "invalid other counter",
			contentType:    "application/json",
			body:           `{"fans_count":10,"pay_count":"many"}`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &api.ErrorResponse{Error: "输入参数无效", Detail: "pay_count 参数无效"},
		},
		{
			name:           "malformed json",
			contentType:    "application/json",
			body:           `{"fans_count":`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "computation failure",
			contentType: "application/json",
			body:        `{"fans_count":10}`,
			setupMock: func(m *mockService) {
				m.On("Calculate", mock.Anything, domain.InputCounters{FansCount: 10}).
					Return(domain.CalculationResult{}, fmt.Errorf("failed to compute total_cost: %w", domain.ErrComputation))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &api.ErrorResponse{
				Error:  "计算失败",
				Detail: "failed to compute total_cost: computation error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setupMock(svc)
			h := NewHandler(svc, "test")

			req := httptest.NewRequest(http.MethodPost, "/api/calc", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			h.Calculate(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			switch {
			case tt.expectedStatus == http.StatusOK:
				var response api.CalcResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, 722.0, response.TotalCost)
				assert.Equal(t, 109.7, response.CostPerPay)
				assert.Equal(t, "2026/10/16", response.DailyReport.Date)
				assert.Equal(t, "2026-10-16T06:03:05.000Z", response.DailyReport.Timestamp)
				assert.Equal(t, []string{"⚠️ 单个付费成本过高: ¥109.7 > ¥100"}, response.DailyReport.Warnings)
				assert.Equal(t, response.Results, response.DailyReport.Results)
			case tt.expectedError != nil:
				var response api.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, *tt.expectedError, response)
			default:
				var response api.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, "请求体格式错误", response.Error)
			}

			svc.AssertExpectations(t)
		})
	}
}

func TestCalculate_InvalidInputNeverReachesService(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, "test")

	req := httptest.NewRequest(http.MethodPost, "/api/calc", strings.NewReader(`{"fans_count":-5}`))
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
}

func TestDownloadReport(t *testing.T) {
	svc := new(mockService)
	svc.On("Calculate", mock.Anything, domain.InputCounters{FansCount: 500}).Return(sampleResult(), nil)
	h := NewHandler(svc, "test")

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(`{"fans_count":500}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.DownloadReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, sampleResult().Report.FormattedText, rec.Body.String())

	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, "直播成本日报_2026-10-16.txt", params["filename"])
	svc.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	h := NewHandler(new(mockService), "1.2.3")
	h.clock = func() time.Time { return time.Date(2026, 10, 16, 6, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response api.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, api.HealthResponse{
		Status:    "healthy",
		Message:   "成本计算系统运行正常",
		Timestamp: time.Date(2026, 10, 16, 6, 0, 0, 0, time.UTC),
		Version:   "1.2.3",
	}, response)
}

func TestNotFound(t *testing.T) {
	h := NewHandler(new(mockService), "test")

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/api/nope?x=1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var response api.NotFoundResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, api.NotFoundResponse{Error: "接口不存在", Path: "/api/nope?x=1"}, response)
}
