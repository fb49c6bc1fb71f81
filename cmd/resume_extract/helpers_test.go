package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateEnv clears the environment variables the CLI reads so tests run on
// the offline rules backend without a database.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RESUME_BACKEND", "GEMINI_API_KEY", "RESUME_PROFILE", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "RESUME_PARALLELISM", "RESUME_DEFAULT_REGION"} {
		t.Setenv(key, "")
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
