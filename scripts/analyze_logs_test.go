package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `{"level":"info","time":"2026-06-01T10:00:00.000Z","msg":"request","method":"GET","path":"/api/orders/my-orders","status":200,"duration":0.012}
{"level":"info","time":"2026-06-01T10:00:01.000Z","msg":"request","method":"PUT","path":"/api/orders/x/cancel","status":400,"duration":"1.5s"}
{"level":"warn","time":"2026-06-01T10:00:02.000Z","msg":"security event","event":"security","kind":"payment_signature_mismatch","principal":"user_1"}
{"level":"warn","time":"2026-06-01T10:00:03.000Z","msg":"security event","event":"security","kind":"payment_signature_mismatch","principal":"user_2"}
{"level":"error","time":"2026-06-01T10:00:04.000Z","msg":"Request PUT /api/orders/x/status failed: connection refused"}
not json at all
`

func TestAnalyze(t *testing.T) {
	stats, err := analyze(strings.NewReader(sampleLog))
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Lines)
	assert.Equal(t, 1, stats.Unparsed)
	assert.Equal(t, map[string]int{"info": 2, "warn": 2, "error": 1}, stats.Levels)
	assert.Equal(t, map[string]int{"payment_signature_mismatch": 2}, stats.SecurityEvents)
	assert.Equal(t, map[string]int{"2xx": 1, "4xx": 1}, stats.StatusClasses)
	assert.Equal(t, 1, stats.SlowRequests)
	assert.Len(t, stats.ErrorPatterns, 1)
}

func TestPrintReport(t *testing.T) {
	stats, err := analyze(strings.NewReader(sampleLog))
	require.NoError(t, err)

	var buf bytes.Buffer
	printReport(&buf, stats)
	assert.Contains(t, buf.String(), "payment_signature_mismatch: 2")
	assert.Contains(t, buf.String(), "slow (>= 1s): 1")
}

func TestTopNOrdersByCountThenKey(t *testing.T) {
	got := topN(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}, 3)
	assert.Equal(t, []counted{{"c", 5}, {"a", 2}, {"b", 2}}, got)
}
