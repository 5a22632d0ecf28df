package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"genpact-relay/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// jsonValidator 以 json 欄位名稱回報錯誤
type jsonValidator struct{ v *validator.Validate }

func newJSONValidator() *jsonValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return &jsonValidator{v: v}
}

func (j *jsonValidator) Validate(i interface{}) error { return j.v.Struct(i) }

type askCall struct {
	question   string
	indexNames []string
}

type stubAsker struct {
	answer string
	err    error
	calls  []askCall
}

func (s *stubAsker) Ask(_ context.Context, question string, indexNames []string) (string, error) {
	s.calls = append(s.calls, askCall{question: question, indexNames: indexNames})
	return s.answer, s.err
}

type stubRecorder struct{ records []model.QueryRecord }

func (s *stubRecorder) Record(r model.QueryRecord) { s.records = append(s.records, r) }

func newJSONCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRootHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newJSONCtx(e, http.MethodGet, "/", "")
	require.NoError(t, RootHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, rootMessage, decode(t, rec)["message"])
}
