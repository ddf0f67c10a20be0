package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/botzz826/gradle/internal/adapters/telemetry/progrock"
)

func TestTracer_Integration(t *testing.T) {
	// 1. Initialize the Tracer
	tracer := progrock.New()

	// 2. Start a span for a task
	ctx := context.Background()
	_, span := tracer.Start(ctx, "compile")

	// 3. Write to the span output
	if _, err := span.Write([]byte("compiling 12 sources\n")); err != nil {
		t.Errorf("failed to write to span: %v", err)
	}

	// 4. Attach an attribute
	span.SetAttribute("gradle.incremental", true)

	// 5. Complete the span
	span.End()

	// 6. Record a failing span, End must stay safe to call twice
	_, failed := tracer.Start(ctx, "test")
	failed.RecordError(errors.New("assertion failed"))
	failed.End()
	failed.End()

	// 7. Emit the plan and close the session
	tracer.EmitPlan(ctx, []string{"compile", "test"})
	if err := tracer.(*progrock.Tracer).Close(); err != nil {
		t.Errorf("failed to close tracer: %v", err)
	}
}
