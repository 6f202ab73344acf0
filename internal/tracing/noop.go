// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"go.opentelemetry.io/otel/trace/noop"
)

func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
}
