package router

import (
	"net/http"
	"testing"
	"time"

	"genpact-relay/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type noToken struct{}

func (noToken) CachedUntil() (time.Time, bool) { return time.Time{}, false }

func routes(e *echo.Echo) map[string]struct{} {
	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}
	return got
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{
		Tokens:  noToken{},
		DB:      &database.FakeDB{},
		Metrics: http.NotFoundHandler(),
	})

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /ping",
		http.MethodPost + " /generate-contract",
		http.MethodPost + " /query",
		http.MethodGet + " /history",
		http.MethodGet + " /metrics",
	}

	got := routes(e)
	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestSetupWithoutOptionalBackends(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{Tokens: noToken{}})

	got := routes(e)
	require.NotContains(t, got, http.MethodGet+" /history")
	require.NotContains(t, got, http.MethodGet+" /metrics")
	require.Contains(t, got, http.MethodPost+" /query")
}
