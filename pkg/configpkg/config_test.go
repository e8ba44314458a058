package configpkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir
}

func TestLoad(t *testing.T) {
	dir := writeEnvFile(t, `SERVER_ADDRESS=127.0.0.1:9000
GO_ENV=development
ACCOUNT_PREFIX=BNK
ACCOUNT_SEQUENCE_BASE=5000
SEED_DEMO_ACCOUNTS=true
`)

	got, err := Load(dir)
	require.NoError(t, err)

	want := Config{
		ServerAddress:       "127.0.0.1:9000",
		Environment:         "development",
		AccountPrefix:       "BNK",
		AccountSequenceBase: 5000,
		SeedDemoAccounts:    true,
	}
	require.Equal(t, want, got)
}

func TestLoadDefaults(t *testing.T) {
	dir := writeEnvFile(t, "ACCOUNT_PREFIX=\n")

	got, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, DefaultAccountPrefix, got.AccountPrefix)
	require.Equal(t, int64(1000), got.AccountSequenceBase)
	require.Equal(t, "0.0.0.0:8080", got.ServerAddress)
	require.False(t, got.SeedDemoAccounts)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := writeEnvFile(t, "ACCOUNT_PREFIX=ACC\n")
	t.Setenv("ACCOUNT_PREFIX", "ENV")

	got, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "ENV", got.AccountPrefix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}
