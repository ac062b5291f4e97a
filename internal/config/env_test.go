package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerReadsEnvFileFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=warn\nAPP_ENV=test\n"), 0o600))

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("APP_ENV"))

	logger := NewLogger(path)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}
