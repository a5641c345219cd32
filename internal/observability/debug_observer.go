// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver prints an indented trace of each step to stderr. All methods
// are safe to call on a nil receiver so callers need no debug checks.
type DebugObserver struct {
	*StandardObserver
	indent int
}

// NewDebugObserver creates a debug observer writing to writer
func NewDebugObserver(writer io.Writer) *DebugObserver {
	d := &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
	d.StandardObserver.DebugObserver = d
	return d
}

// StartStep prints the step header and returns the function that closes it
func (d *DebugObserver) StartStep(component, step, target string) func(success bool, details string) {
	if d == nil {
		return func(bool, string) {}
	}

	start := time.Now()
	fmt.Fprintf(d.writer, "%s🔄 %s: %s (%s)\n", d.prefix(), component, step, target)
	d.indent++

	return func(success bool, details string) {
		d.indent--
		status := "completed"
		mark := "✅"
		if !success {
			status = "failed"
			mark = "❌"
		}
		fmt.Fprintf(d.writer, "%s%s %s: %s %s (%dms) %s\n",
			d.prefix(), mark, component, step, status, time.Since(start).Milliseconds(), details)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	if d == nil {
		return
	}
	fmt.Fprintf(d.writer, "%s   → %s: %s\n", d.prefix(), component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	if d == nil {
		return
	}
	fmt.Fprintf(d.writer, "%s   📊 %s: %s = %v\n", d.prefix(), component, metric, value)
}

// Timing returns the structured operation recorder, or nil when debugging is off
func (d *DebugObserver) Timing() *StandardObserver {
	if d == nil {
		return nil
	}
	return d.StandardObserver
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.indent)
}
