package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestCaptureRequestBody_TruncatesAttributeAndKeepsBody(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	body := `{"team":"KC","spread":3.5}`
	var downstream string
	handler := CaptureRequestBody(8, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		downstream = string(raw)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/bets", strings.NewReader(body))
	ctx, span := provider.Tracer("test").Start(req.Context(), "request")
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	span.End()

	if downstream != body {
		t.Fatalf("downstream body=%q want=%q", downstream, body)
	}

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected one span, got %d", len(ended))
	}
	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["http.request.body"] != `{"team":` {
		t.Fatalf("unexpected captured body: %q", attrs["http.request.body"])
	}
	if attrs["http.request.body.truncated"] != "true" {
		t.Fatalf("expected truncated flag, got %q", attrs["http.request.body.truncated"])
	}
}

func TestCaptureRequestBody_SkipsReads(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	handler := CaptureRequestBody(0, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/week", nil)
	ctx, span := provider.Tracer("test").Start(req.Context(), "request")
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	span.End()

	for _, kv := range recorder.Ended()[0].Attributes() {
		if strings.HasPrefix(string(kv.Key), "http.request.body") {
			t.Fatalf("unexpected body attribute on GET: %s", kv.Key)
		}
	}
}
