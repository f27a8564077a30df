package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// configured input path fails validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInputConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Input: Input{Path: "backend.yaml"}},
		&StructuredConfig{Output: Output{Format: FormatJSON}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "backend.yaml", cfg.Input.Path)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

// TestBuild_AppliesDefaults verifies that the output format and log level
// default when no source provides them.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Input: Input{Path: "backend.yaml"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

// TestBuild_RejectsUnknownFormat verifies that an unsupported output format
// fails validation.
func TestBuild_RejectsUnknownFormat(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Input:  Input{Path: "backend.yaml"},
		Output: Output{Format: "toml"},
	})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutputConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("INPUT_FILE", "env.yaml")
	t.Setenv("OUTPUT_FORMAT", "json")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.yaml", b.configs[0].Input.Path)
	assert.Equal(t, FormatJSON, b.configs[0].Output.Format)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FromEnv verifies the full build path with the
// input path supplied via the environment.
func TestGetStructuredConfig_FromEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("INPUT_FILE", "backend.yaml")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "backend.yaml", cfg.Input.Path)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

// TestGetStructuredConfig_MissingInput verifies that the build fails when
// no source provides an input path.
func TestGetStructuredConfig_MissingInput(t *testing.T) {
	resetFlags(t)

	cfg, err := GetStructuredConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInputConfigs)
}
