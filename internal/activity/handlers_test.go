package activity

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func testApp(t *testing.T) (*fiber.App, *Collector) {
	t.Helper()
	st := newTestStore(t)
	collector := NewSeededCollector(st, 1, fixedNow)

	app := fiber.New()
	RegisterRoutes(app.Group("/activity"), collector, func(c *fiber.Ctx) error {
		c.Locals("email", "a@b.com")
		return c.Next()
	})
	return app, collector
}

func TestRecordsHandler(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/activity/records?timeframe=week", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("records status: %v %d", err, resp.StatusCode)
	}

	var body struct {
		Timeframe string           `json:"timeframe"`
		Records   []ActivityRecord `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Timeframe != "week" {
		t.Fatalf("unexpected timeframe: %q", body.Timeframe)
	}
	if len(body.Records) == 0 {
		t.Fatalf("expected backfilled records for empty store")
	}
}

func TestRecordsHandlerBadTimeframe(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/activity/records?timeframe=decade", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestLogHandler(t *testing.T) {
	app, _ := testApp(t)

	payload, _ := json.Marshal(map[string]any{
		"date":      "2025-01-09",
		"exercises": []string{"squats", "plank", "rows"},
	})
	req := httptest.NewRequest(http.MethodPost, "/activity/log", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("log status: %v", err)
	}

	var rec ActivityRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.CompletedCount != 3 || rec.Date != "2025-01-09" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestLogHandlerBadDate(t *testing.T) {
	app, _ := testApp(t)

	payload := []byte(`{"date":"tomorrow","exercises":["squats"]}`)
	req := httptest.NewRequest(http.MethodPost, "/activity/log", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestRecordsHandlerNoIdentity(t *testing.T) {
	st := newTestStore(t)
	app := fiber.New()
	RegisterRoutes(app.Group("/activity"), NewCollector(st), func(c *fiber.Ctx) error { return c.Next() })

	req := httptest.NewRequest(http.MethodGet, "/activity/records", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized without identity")
	}
}
