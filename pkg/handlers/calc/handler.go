package calc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/de-tools/livecost/pkg/adapters"
	"github.com/de-tools/livecost/pkg/models/api"
	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/de-tools/livecost/pkg/services/calc"
	"github.com/rs/zerolog"
)

const (
	maxBodyBytes   = 1 << 20
	reportFilename = "直播成本日报_%s.txt"
)

const (
	msgFansInvalid  = "上粉数量必须大于0"
	msgInputInvalid = "输入参数无效"
	msgBodyInvalid  = "请求体格式错误"
	msgCalcFailed   = "计算失败"
	msgNotFound     = "接口不存在"
	msgHealthy      = "成本计算系统运行正常"
)

type Handler struct {
	svc     calc.Service
	version string
	clock   func() time.Time
}

func NewHandler(svc calc.Service, version string) *Handler {
	return &Handler{
		svc:     svc,
		version: version,
		clock:   time.Now,
	}
}

// Calculate handles POST /api/calc.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	res, ok := h.calculate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapCalculationResultDomainToApi(res))
}

// DownloadReport handles POST /api/report and returns the formatted text as a file.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	res, ok := h.calculate(w, r)
	if !ok {
		return
	}

	name := fmt.Sprintf(reportFilename, res.Report.Date.Format(time.DateOnly))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, res.Report.FormattedText); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write report file")
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, api.HealthResponse{
		Status:    "healthy",
		Message:   msgHealthy,
		Timestamp: h.clock().UTC(),
		Version:   h.version,
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, api.NotFoundResponse{
		Error: msgNotFound,
		Path:  r.URL.RequestURI(),
	})
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (domain.CalculationResult, bool) {
	ctx := r.Context()

	counters, err := decodeCounters(w, r)
	if err != nil {
		writeCalcError(w, r, err)
		return domain.CalculationResult{}, false
	}

	res, err := h.svc.Calculate(ctx, counters)
	if err != nil {
		writeCalcError(w, r, err)
		return domain.CalculationResult{}, false
	}
	return res, true
}

var errMalformedBody = errors.New("malformed request body")

func decodeCounters(w http.ResponseWriter, r *http.Request) (domain.InputCounters, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return domain.InputCounters{}, fmt.Errorf("%w: %w", errMalformedBody, err)
		}
		return adapters.ParseForm(r.PostForm)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return domain.InputCounters{}, fmt.Errorf("%w: %w", errMalformedBody, err)
		}
		return adapters.ParseForm(r.PostForm)
	}

	raw := map[string]any{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return domain.InputCounters{}, fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return adapters.ParseCounters(raw)
}

func writeCalcError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var fieldErr *domain.FieldError
	switch {
	case errors.As(err, &fieldErr):
		msg := msgInputInvalid
		if fieldErr.Field == domain.FieldFansCount {
			msg = msgFansInvalid
		}
		writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{
			Error:  msg,
			Detail: fmt.Sprintf("%s 参数无效", fieldErr.Field),
		})
	case errors.Is(err, errMalformedBody), errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{
			Error:  msgBodyInvalid,
			Detail: err.Error(),
		})
	default:
		logger.Error().Err(err).Msg("calculation request failed")
		writeJSON(w, r, http.StatusInternalServerError, api.ErrorResponse{
			Error:  msgCalcFailed,
			Detail: err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Int("status", status).
			Msg("failed to encode response")
	}
}
