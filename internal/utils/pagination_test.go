package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseOn(t *testing.T, target string) PageParams {
	t.Helper()
	app := fiber.New()
	var params PageParams
	app.Get("/", func(c *fiber.Ctx) error {
		params = ParsePageParams(c)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest("GET", target, nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return params
}

func TestParsePageParamsDefaults(t *testing.T) {
	p := parseOn(t, "/")
	if p.Page != DefaultPage || p.Limit != DefaultLimit {
		t.Errorf("defaults = %+v", p)
	}
}

func TestParsePageParamsClamping(t *testing.T) {
	cases := map[string]PageParams{
		"/?page=3&limit=50":    {Page: 3, Limit: 50},
		"/?page=0&limit=0":     {Page: DefaultPage, Limit: DefaultLimit},
		"/?page=-2&limit=999":  {Page: DefaultPage, Limit: DefaultLimit},
		"/?page=abc&limit=xyz": {Page: DefaultPage, Limit: DefaultLimit},
	}
	for target, want := range cases {
		if got := parseOn(t, target); got != want {
			t.Errorf("%s: got %+v, want %+v", target, got, want)
		}
	}
}

func TestPageParamsOffset(t *testing.T) {
	if o := (PageParams{Page: 1, Limit: 20}).Offset(); o != 0 {
		t.Errorf("page 1 offset = %d, want 0", o)
	}
	if o := (PageParams{Page: 3, Limit: 20}).Offset(); o != 40 {
		t.Errorf("page 3 offset = %d, want 40", o)
	}
}

func TestListResponsePagesCeiling(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ListResponse(c, []string{}, 1, 10, 25)
	})
	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}
