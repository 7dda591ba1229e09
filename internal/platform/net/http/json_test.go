package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type jsonIn struct {
	N int `json:"n"`
}

func postJSON(t *testing.T, h Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestJSONHandlerSuccess(t *testing.T) {
	t.Parallel()

	double := func(_ *http.Request, body jsonIn) (any, error) {
		return map[string]int{"doubled": body.N * 2}, nil
	}

	rec := postJSON(t, JSONHandler[jsonIn](double), `{"n":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"doubled":14`) {
		t.Fatalf("body %q missing doubled result", rec.Body.String())
	}
}

func TestJSONHandlerBindErrorSkipsHandler(t *testing.T) {
	t.Parallel()

	called := false
	h := JSONHandler[jsonIn](func(_ *http.Request, _ jsonIn) (any, error) {
		called = true
		return nil, nil
	})

	rec := postJSON(t, h, `{`) // truncated JSON
	switch {
	case called:
		t.Fatal("handler ran despite bind failure")
	case rec.Code == http.StatusOK:
		t.Fatalf("expected non-200 on bind error, got %d", rec.Code)
	case !strings.Contains(strings.ToLower(rec.Body.String()), "error"):
		t.Fatalf("expected error envelope, got %q", rec.Body.String())
	}
}

func TestJSONHandlerHandlerError(t *testing.T) {
	t.Parallel()

	h := JSONHandler[jsonIn](func(_ *http.Request, _ jsonIn) (any, error) {
		return nil, errors.New("boom")
	})

	rec := postJSON(t, h, `{"n":1}`)
	if rec.Code == http.StatusOK {
		t.Fatalf("expected non-200 on handler error, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "boom") {
		t.Fatalf("expected error message in body, got %q", rec.Body.String())
	}
}
