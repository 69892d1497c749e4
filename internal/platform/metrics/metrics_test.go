package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollector_ExposesRecordedRequests(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.RecordRequest(200, 15*time.Millisecond)
	c.RecordRequest(200, 5*time.Millisecond)
	c.RecordRequest(404, 1*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status=%d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `planner_http_requests_total{status_code="200"} 2`) {
		t.Fatalf("missing 200 counter:\n%s", body)
	}
	if !strings.Contains(body, `planner_http_requests_total{status_code="404"} 1`) {
		t.Fatalf("missing 404 counter:\n%s", body)
	}
	if !strings.Contains(body, "planner_http_request_duration_seconds") {
		t.Fatalf("missing latency histogram:\n%s", body)
	}
}
