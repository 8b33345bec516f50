package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "nested", "dir", "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should be created with parent dirs")

	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestFileExporter_WritesOneLinePerSpan(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")
	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	start := time.Date(2025, 3, 18, 12, 0, 0, 0, time.UTC)
	stubs := tracetest.SpanStubs{
		{
			Name:       SpanLookup,
			StartTime:  start,
			EndTime:    start.Add(150 * time.Millisecond),
			Attributes: []attribute.KeyValue{attribute.String(AttrLEI, "5493001KJTIIGC8Y1R12")},
			Status:     sdktrace.Status{Code: codes.Error, Description: "Not Found"},
		},
		{
			Name:      SpanLookup,
			StartTime: start,
			EndTime:   start.Add(time.Millisecond),
		},
	}
	require.NoError(t, exporter.ExportSpans(context.Background(), stubs.Snapshots()))
	require.NoError(t, exporter.Shutdown(context.Background()))

	f, err := os.Open(tracePath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2)

	require.Equal(t, SpanLookup, records[0].Name)
	require.Equal(t, "ERROR", records[0].Status)
	require.Equal(t, "Not Found", records[0].StatusMsg)
	require.Equal(t, 150.0, records[0].DurationMs)
	require.Equal(t, "5493001KJTIIGC8Y1R12", records[0].Attributes[AttrLEI])
	require.Equal(t, "UNSET", records[1].Status)
}

func TestFileExporter_ExportAfterShutdown(t *testing.T) {
	exporter, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "second shutdown is a no-op")

	stubs := tracetest.SpanStubs{{Name: "late"}}
	require.Error(t, exporter.ExportSpans(context.Background(), stubs.Snapshots()))
}

func TestFileExporter_EmptyBatch(t *testing.T) {
	exporter, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)
	defer func() { _ = exporter.Shutdown(context.Background()) }()

	require.NoError(t, exporter.ExportSpans(context.Background(), nil))
}
