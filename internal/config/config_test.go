package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return Load(viper.New(), fs)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, "--log-level=debug", "--tolerance=2.5", "--tray=false", "--pause-hotkey=ctrl+shift+p")

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2.5, cfg.Tolerance)
	assert.False(t, cfg.Tray)
	assert.Equal(t, "ctrl+shift+p", cfg.PauseHotkey)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("KBTRACKPAD_LOG_FORMAT", "json")
	t.Setenv("KBTRACKPAD_NOTIFICATIONS", "false")
	t.Setenv("KBTRACKPAD_TOLERANCE", "3")

	cfg, err := load(t)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Notifications)
	assert.Equal(t, 3.0, cfg.Tolerance)
}

func TestFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("KBTRACKPAD_LOG_LEVEL", "error")

	cfg, err := load(t, "--log-level=warn")

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kbtrackpad.toml")
	require.NoError(t, os.WriteFile(path, []byte("tolerance = 4.0\nprompt = false\n"), 0o644))

	cfg, err := load(t, "--config="+path)

	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Tolerance)
	assert.False(t, cfg.Prompt)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := load(t, "--config="+filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	testCases := map[string][]string{
		"zero tolerance":     {"--tolerance=0"},
		"negative tolerance": {"--tolerance=-1"},
		"bad level":          {"--log-level=verbose"},
		"bad format":         {"--log-format=xml"},
		"bad hotkey":         {"--pause-hotkey=Hyper+P"},
	}

	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, args...)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestEmptyHotkeyIsAllowed(t *testing.T) {
	cfg, err := load(t, "--pause-hotkey=")

	require.NoError(t, err)
	assert.Empty(t, cfg.PauseHotkey)
}

func TestNormalizeLogLevel(t *testing.T) {
	for in, want := range map[string]string{"": "info", " DEBUG ": "debug", "Warning": "warn", "error": "error"} {
		got, err := NormalizeLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("KBTRACKPAD_TEST_DOTENV=from-file\n"), 0o644))
	t.Setenv("KBTRACKPAD_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("KBTRACKPAD_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))

	assert.Equal(t, "from-file", os.Getenv("KBTRACKPAD_TEST_DOTENV"))
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KBTRACKPAD_TEST_KEEP=from-file\n"), 0o644))
	t.Setenv("KBTRACKPAD_TEST_KEEP", "from-env")

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("KBTRACKPAD_TEST_KEEP"))
}
