package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocgen/internal/config"
	"git.home.luguber.info/inful/apidocgen/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	return &config.Config{
		Input:  config.InputConfig{Directory: filepath.Join(base, "api")},
		Output: config.OutputConfig{Directory: filepath.Join(base, "docs"), Extension: ".md"},
	}
}

func toolkitPackage() *model.Declaration {
	return &model.Declaration{
		Kind:        model.KindPackage,
		DisplayName: "toolkit",
		Members: []*model.Declaration{{
			Kind: model.KindEntryPoint,
			Members: []*model.Declaration{
				{Kind: model.KindClass, DisplayName: "Widget", Members: []*model.Declaration{
					{Kind: model.KindMethod, DisplayName: "render"},
				}},
			},
		}},
	}
}

func TestRunModel_WritesPages(t *testing.T) {
	cfg := testConfig(t)
	report, err := New(cfg).RunModel(&model.Model{Packages: []*model.Declaration{toolkitPackage()}})
	require.NoError(t, err)

	require.NotEmpty(t, report.RunID)
	require.Equal(t, 1, report.Packages)
	require.Equal(t, 2, report.Pages)

	index, err := os.ReadFile(filepath.Join(cfg.Output.Directory, "index.md"))
	require.NoError(t, err)
	require.Contains(t, string(index), "# toolkit")

	widget, err := os.ReadFile(filepath.Join(cfg.Output.Directory, "classes", "widget.md"))
	require.NoError(t, err)
	require.Contains(t, string(widget), "# Class Widget")
	require.NotContains(t, string(widget), "---\n", "frontmatter off by default")
}

func TestRunModel_Frontmatter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Frontmatter = true

	_, err := New(cfg).RunModel(&model.Model{Packages: []*model.Declaration{toolkitPackage()}})
	require.NoError(t, err)

	widget, err := os.ReadFile(filepath.Join(cfg.Output.Directory, "classes", "widget.md"))
	require.NoError(t, err)
	require.Contains(t, string(widget), "---\ntitle: Class Widget\nuid: Widget\n---\n")
}

func TestRunModel_MultiplePackagesNamespaced(t *testing.T) {
	cfg := testConfig(t)
	second := toolkitPackage()
	second.DisplayName = "@scope/extras"

	report, err := New(cfg).RunModel(&model.Model{
		Packages: []*model.Declaration{toolkitPackage(), second},
	})
	require.NoError(t, err)
	require.Equal(t, 2, report.Packages)

	require.FileExists(t, filepath.Join(cfg.Output.Directory, "toolkit", "index.md"))
	require.FileExists(t, filepath.Join(cfg.Output.Directory, "scope-extras", "index.md"))
}

func TestRunModel_CleansStaleOutput(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Output.Directory, 0o755))
	stale := filepath.Join(cfg.Output.Directory, "stale.md")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err := New(cfg).RunModel(&model.Model{Packages: []*model.Declaration{toolkitPackage()}})
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	require.True(t, os.IsNotExist(statErr))
}

func TestRun_LoadsFromInputDirectory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Input.Directory, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Input.Directory, "toolkit.api.json"),
		[]byte(`{"kind": "Package", "name": "toolkit"}`), 0o644))

	report, err := New(cfg).Run()
	require.NoError(t, err)
	require.Equal(t, 1, report.Packages)
	require.FileExists(t, filepath.Join(cfg.Output.Directory, "index.md"))
}

func TestRunModel_CountsWarnings(t *testing.T) {
	cfg := testConfig(t)
	pkg := toolkitPackage()
	// A duplicate type name logs exactly one warning during hierarchy
	// resolution.
	entry := pkg.Members[0]
	entry.Members = append(entry.Members,
		&model.Declaration{Kind: model.KindClass, DisplayName: "Widget"})

	report, err := New(cfg).RunModel(&model.Model{Packages: []*model.Declaration{pkg}})
	require.NoError(t, err)
	require.Equal(t, 1, report.Warnings)
}
