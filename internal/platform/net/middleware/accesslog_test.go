package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serveThrough(t *testing.T, opt AccessLogOptions, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	AccessLog(opt)(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	return rr
}

func TestAccessLogPassesResponseThrough(t *testing.T) {
	rr := serveThrough(t, AccessLogOptions{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ok")
	})
	if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
		t.Fatalf("response altered: code=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestAccessLogSlowMarkLeavesResponseAlone(t *testing.T) {
	rr := serveThrough(t, AccessLogOptions{Slow: time.Nanosecond}, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Microsecond)
		_, _ = io.WriteString(w, "slow")
	})
	if rr.Code != http.StatusOK || rr.Body.String() != "slow" {
		t.Fatalf("response altered: code=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestCaptureWriterCountsAcrossWrites(t *testing.T) {
	rr := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rr, status: http.StatusOK}

	cw.WriteHeader(http.StatusAccepted)
	_, _ = cw.Write([]byte("hi"))
	_, _ = cw.Write([]byte("there"))

	if cw.status != http.StatusAccepted || rr.Code != http.StatusAccepted {
		t.Fatalf("status not captured: cw=%d rr=%d", cw.status, rr.Code)
	}
	if cw.bytes != 7 || rr.Body.String() != "hithere" {
		t.Fatalf("bytes not captured: n=%d body=%q", cw.bytes, rr.Body.String())
	}
}
