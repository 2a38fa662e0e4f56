package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auth-api/internal/metrics"
	"auth-api/internal/model"
	"auth-api/internal/service"
	"auth-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type errBinder struct{}

func (errBinder) Bind(any, echo.Context) error { return errors.New("bind") }

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	return e
}

func newMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// inlinePool 同步執行工作，讓背景更新在測試中可觀察；full 模擬佇列已滿
type inlinePool struct {
	submitted int
	full      bool
}

func (p *inlinePool) Submit(t worker.Task) bool {
	if p.full {
		return false
	}
	p.submitted++
	t()
	return true
}

func (p *inlinePool) Stop() {}

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// userRow 模擬 repository 的 7 欄位 Scan 與 CreateUser 的 3 欄位 Scan
type userRow struct {
	u   model.User
	err error
}

func (r userRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch len(dest) {
	case 7:
		*dest[0].(*int) = r.u.ID
		*dest[1].(*string) = r.u.FullName
		*dest[2].(*string) = r.u.Email
		*dest[3].(*string) = r.u.PasswordHash
		*dest[4].(*time.Time) = r.u.CreatedAt
		*dest[5].(*time.Time) = r.u.UpdatedAt
		*dest[6].(**time.Time) = r.u.LastLoginAt
	case 3:
		*dest[0].(*int) = r.u.ID
		*dest[1].(*time.Time) = r.u.CreatedAt
		*dest[2].(*time.Time) = r.u.UpdatedAt
	default:
		panic("userRow.Scan: unexpected dest count")
	}
	return nil
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := service.HashPassword(pw)
	if err != nil {
		t.Fatal(err)
	}
	return h
}
