package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	RegisterRoutes(app.Group("/profile"), NewService(newTestStore(t), "", 0), func(c *fiber.Ctx) error {
		c.Locals("email", "a@b.com")
		return c.Next()
	})
	return app
}

func TestProfileHandlers(t *testing.T) {
	app := testApp(t)

	payload := []byte(`{"sex":"male","age":30,"weight":180,"healthConditions":["asthma"]}`)
	req := httptest.NewRequest(http.MethodPut, "/profile/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("put profile status: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/profile/", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get profile status: %v", err)
	}

	var merged UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&merged); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if merged.Sex != "male" || merged.Age != 30 || merged.HealthConditions != "asthma" {
		t.Fatalf("unexpected profile: %+v", merged)
	}
}

func TestProfileHandlersBadPayload(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPut, "/profile/", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestProfileHandlersValidation(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest(http.MethodPut, "/profile/", bytes.NewReader([]byte(`{"age":-5}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request for negative age")
	}
}
