// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StandardObserver records timed operations as structured log entries
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	logger        *zap.Logger
	DebugObserver *DebugObserver // set when running in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer writing JSON records to writer
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
		logger: newJSONLogger(writer),
	}
}

func newJSONLogger(writer io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(writer),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// StartTiming returns a function that completes the operation. The caller
// supplies the outcome fields; component, operation, path and duration are
// filled in here. A nil observer times nothing.
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(outcome StandardObservabilityData) {
	if o == nil {
		return func(StandardObservabilityData) {}
	}
	start := time.Now()

	return func(outcome StandardObservabilityData) {
		outcome.Component = component
		outcome.Operation = operation
		outcome.FilePath = filePath
		outcome.DurationMs = time.Since(start).Milliseconds()
		o.LogOperation(outcome)
	}
}

// LogOperation logs operation data. Records are only written in debug mode.
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level != ObservabilityDebug {
		return
	}

	fields := []zap.Field{
		zap.String("component", data.Component),
		zap.String("operation", data.Operation),
		zap.Bool("success", data.Success),
		zap.Int64("duration_ms", data.DurationMs),
	}
	if data.FilePath != "" {
		fields = append(fields, zap.String("file_path", data.FilePath))
	}
	if data.Error != "" {
		fields = append(fields, zap.String("error", data.Error))
	}
	if data.MatchCount > 0 {
		fields = append(fields, zap.Int("match_count", data.MatchCount))
	}
	if len(data.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", data.Metadata))
	}

	o.logger.Info("operation", fields...)
}

// Sync flushes buffered records
func (o *StandardObserver) Sync() error {
	return o.logger.Sync()
}

// StandardObservabilityData describes one completed operation
type StandardObservabilityData struct {
	Component  string
	Operation  string
	FilePath   string
	DurationMs int64
	Success    bool
	Error      string
	MatchCount int
	Metadata   map[string]interface{}
}
