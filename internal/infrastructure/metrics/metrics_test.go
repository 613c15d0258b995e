package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestMiddlewareLabelsRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/v1/meetings/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	})

	for _, id := range []string{"m1", "m2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meetings/"+id, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
	}

	out := scrape(t, m)
	want := `notulensi_http_requests_total{method="GET",path="/v1/meetings/:id",status="200"} 2`
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in:\n%s", want, out)
	}
	if strings.Contains(out, `path="/v1/meetings/m1"`) {
		t.Fatalf("raw path leaked into labels")
	}
}

func TestObserveExport(t *testing.T) {
	m := New()
	m.ObserveExport("id", "success", 3, 20*time.Millisecond)
	m.ObserveExport("en", "error", 0, time.Millisecond)

	out := scrape(t, m)
	for _, want := range []string{
		`notulensi_exports_total{locale="id",outcome="success"} 1`,
		`notulensi_exports_total{locale="en",outcome="error"} 1`,
		`notulensi_export_pages_count 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}
