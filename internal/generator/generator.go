// Package generator orchestrates one full documentation build: load the
// doc model, resolve each package's hierarchy, build and emit every page,
// and persist the result.
package generator

import (
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/apidocgen/internal/apiload"
	"git.home.luguber.info/inful/apidocgen/internal/config"
	"git.home.luguber.info/inful/apidocgen/internal/docnodes"
	"git.home.luguber.info/inful/apidocgen/internal/frontmatter"
	"git.home.luguber.info/inful/apidocgen/internal/hierarchy"
	"git.home.luguber.info/inful/apidocgen/internal/logfields"
	"git.home.luguber.info/inful/apidocgen/internal/markdown"
	"git.home.luguber.info/inful/apidocgen/internal/model"
	"git.home.luguber.info/inful/apidocgen/internal/pagebuilder"
	"git.home.luguber.info/inful/apidocgen/internal/router"
	"git.home.luguber.info/inful/apidocgen/internal/writer"
)

// Report summarizes one generation run.
type Report struct {
	RunID    string
	Packages int
	Pages    int
	Warnings int
	Duration time.Duration
}

// Generator runs full builds for one configuration.
type Generator struct {
	cfg *config.Config
}

// New creates a Generator.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run loads the doc model from the configured input directory and
// generates the full page set.
func (g *Generator) Run() (*Report, error) {
	m, err := apiload.LoadDirectory(g.cfg.Input.Directory)
	if err != nil {
		return nil, err
	}
	return g.RunModel(m)
}

// RunModel generates the full page set for an already-loaded model.
// Packages are processed strictly one at a time; within a package the
// hierarchy is resolved to completion before the first page is built.
func (g *Generator) RunModel(m *model.Model) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	start := time.Now()

	restore, warnings := countWarnings()
	defer restore()

	slog.Info("Starting generation",
		logfields.RunID(report.RunID),
		slog.Int("packages", len(m.Packages)))

	out := writer.New(g.cfg.Output.Directory, g.cfg.NewlineString())
	if err := out.Clean(); err != nil {
		return nil, err
	}

	grammar := docnodes.NewGrammar()
	emitter := markdown.NewEmitter(grammar)
	rt := router.New(g.cfg.Output.Extension)

	for _, pkg := range m.Packages {
		pkgStart := time.Now()
		pkg.AttachParents()
		table, graph := hierarchy.Build(pkg)
		builder := pagebuilder.New(table, graph, rt, grammar)

		pages, err := builder.BuildPackage(pkg)
		if err != nil {
			return nil, err
		}
		prefix := packagePrefix(m, pkg)
		for _, page := range pages {
			if err := g.persist(out, emitter, prefix, page); err != nil {
				return nil, err
			}
		}

		report.Packages++
		report.Pages += len(pages)
		slog.Info("Package generated",
			logfields.RunID(report.RunID),
			logfields.Package(pkg.DisplayName),
			logfields.Pages(len(pages)),
			logfields.DurationMS(float64(time.Since(pkgStart).Microseconds())/1000))
	}

	report.Warnings = warnings()
	report.Duration = time.Since(start)
	slog.Info("Generation finished",
		logfields.RunID(report.RunID),
		slog.Int("packages", report.Packages),
		logfields.Pages(report.Pages),
		slog.Int("warnings", report.Warnings),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

func (g *Generator) persist(out *writer.Writer, emitter *markdown.Emitter, prefix string, page *pagebuilder.Page) error {
	var header []byte
	if g.cfg.Output.Frontmatter {
		var err error
		header, err = frontmatter.Compose(
			frontmatter.PageFields(page.Title, page.UID()),
			frontmatter.Style{Newline: g.cfg.NewlineString()},
		)
		if err != nil {
			return err
		}
	}
	return out.WritePage(path.Join(prefix, page.Target.Path), header, emitter.Emit(page.Body))
}

// packagePrefix namespaces page paths by package when the model holds more
// than one, so two packages' index pages cannot collide. Relative links
// stay valid because every page of a package shifts by the same prefix.
func packagePrefix(m *model.Model, pkg *model.Declaration) string {
	if len(m.Packages) <= 1 {
		return ""
	}
	name := strings.ToLower(pkg.DisplayName)
	name = strings.TrimPrefix(name, "@")
	return strings.ReplaceAll(name, "/", "-")
}
