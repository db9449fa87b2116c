package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apidocgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "input:\n  directory: ./model\n"))
	require.NoError(t, err)

	require.Equal(t, "./model", cfg.Input.Directory)
	require.Equal(t, "./docs", cfg.Output.Directory)
	require.Equal(t, ".md", cfg.Output.Extension)
	require.False(t, cfg.Output.Frontmatter)
	require.Equal(t, "lf", cfg.Output.Newline)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Equal(t, "\n", cfg.NewlineString())
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
input:
  directory: ./model
output:
  directory: ./site
  extension: .markdown
  frontmatter: true
  newline: CRLF
logging:
  level: DEBUG
  format: json
`))
	require.NoError(t, err)

	require.Equal(t, "./site", cfg.Output.Directory)
	require.Equal(t, ".markdown", cfg.Output.Extension)
	require.True(t, cfg.Output.Frontmatter)
	require.Equal(t, "\r\n", cfg.NewlineString())
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("APIDOCGEN_TEST_OUT", "./from-env")
	cfg, err := Load(writeConfig(t, "output:\n  directory: ${APIDOCGEN_TEST_OUT}\n"))
	require.NoError(t, err)
	require.Equal(t, "./from-env", cfg.Output.Directory)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoad_SameInputOutputRejected(t *testing.T) {
	_, err := Load(writeConfig(t, "input:\n  directory: ./x\noutput:\n  directory: ./x\n"))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestNormalizers_UnknownFallsBack(t *testing.T) {
	require.Equal(t, LogLevelInfo, NormalizeLogLevel("loud"))
	require.Equal(t, LogFormatText, NormalizeLogFormat("xml"))
	require.Equal(t, NewlineLF, NormalizeNewline("cr"))
}

func TestInit_WritesAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apidocgen.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./api", cfg.Input.Directory)

	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
