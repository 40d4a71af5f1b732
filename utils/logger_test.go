package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggerWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { logger = zap.NewNop().Sugar() })

	require.NoError(t, InitLogger(LoggerOptions{Dir: dir, Production: true}))
	LogInfo("order %s created", "order-1")
	LogDebug("hidden at info level")
	LogSecurity("payment_signature_mismatch", "principal", "user_1")
	SyncLogger()

	matches, err := filepath.Glob(filepath.Join(dir, "app-*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "order order-1 created")
	assert.Contains(t, string(content), "payment_signature_mismatch")
	assert.NotContains(t, string(content), "hidden at info level")
}
