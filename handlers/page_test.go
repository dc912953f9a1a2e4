package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wifi-on-ice/dashboard/web"
)

func TestGetIndex(t *testing.T) {
	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	h := NewPageHandler(tmpl)
	rec := httptest.NewRecorder()
	h.GetIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"WIFI on ICE",
		"Choose a route",
		`value="Internet Speed"`,
		`value="Amount Devices"`,
		`value="Wifi Disruptions"`,
		"very fast surf speed",
		"51.1642292",
		"Hildesheim Hbf",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}
