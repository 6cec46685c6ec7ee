package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() failed: %v", err)
	}

	// Spans from the default provider must not be recorded.
	_, span := Tracer("test").Start(context.Background(), "probe")
	defer span.End()
	if span.IsRecording() {
		t.Error("span should not record without an exporter")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "probe")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("noop tracer should produce invalid span contexts")
	}
}
