package http

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func textHandler(text string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, text)
	})
}

func TestServerMountsUnderBaseURL(t *testing.T) {
	server := NewServer(
		WithBaseURL("/taskbot/"),
		WithMount("/", textHandler("status")),
		WithMount("/api/v1/", textHandler("api")),
	)

	handler := server.handler()

	testCases := []struct {
		Path           string
		ExpectedStatus int
		ExpectedBody   string
	}{
		{Path: "/taskbot/", ExpectedStatus: http.StatusOK, ExpectedBody: "status"},
		{Path: "/taskbot/api/v1/tasks", ExpectedStatus: http.StatusOK, ExpectedBody: "api"},
		{Path: "/api/v1/tasks", ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest("GET", tc.Path, nil))

		res := rec.Result()
		defer res.Body.Close()

		if e, g := tc.ExpectedStatus, res.StatusCode; e != g {
			t.Errorf("GET %s: expected status %d, got %d", tc.Path, e, g)
			continue
		}

		if tc.ExpectedBody == "" {
			continue
		}

		body, err := io.ReadAll(res.Body)
		if err != nil {
			t.Fatalf("%+v", err)
		}

		if e, g := tc.ExpectedBody, string(body); e != g {
			t.Errorf("GET %s: expected body %q, got %q", tc.Path, e, g)
		}
	}
}

func TestServerDefaultBaseURL(t *testing.T) {
	server := NewServer(
		WithMount("/api/v1/", textHandler("api")),
	)

	rec := httptest.NewRecorder()

	server.handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/tasks", nil))

	if e, g := http.StatusOK, rec.Code; e != g {
		t.Errorf("rec.Code: expected %d, got %d", e, g)
	}
}
