// Package apiload reads *.api.json doc-model files into the declaration
// forest. One file describes one package; raw doc comments are parsed into
// the structured comment model during decoding.
package apiload

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocgen/internal/comments"
	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocgen/internal/logfields"
	"git.home.luguber.info/inful/apidocgen/internal/model"
)

// FileSuffix selects the doc-model files inside the input directory.
const FileSuffix = ".api.json"

// wireItem is the on-disk shape of one declaration.
type wireItem struct {
	Kind          string      `json:"kind"`
	Name          string      `json:"name"`
	DocComment    string      `json:"docComment,omitempty"`
	ReleaseTag    string      `json:"releaseTag,omitempty"`
	IsStatic      bool        `json:"isStatic,omitempty"`
	IsEvent       bool        `json:"isEventProperty,omitempty"`
	OverloadIndex int         `json:"overloadIndex,omitempty"`
	Excerpt       string      `json:"excerpt,omitempty"`
	Extends       string      `json:"extends,omitempty"`
	Implements    []string    `json:"implements,omitempty"`
	ExtendsTypes  []string    `json:"extendsTypes,omitempty"`
	Parameters    []wireParam `json:"parameters,omitempty"`
	ReturnType    string      `json:"returnType,omitempty"`
	Type          string      `json:"type,omitempty"`
	Initializer   string      `json:"initializer,omitempty"`
	Members       []wireItem  `json:"members,omitempty"`
}

type wireParam struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// LoadDirectory reads every *.api.json file directly inside dir, in file
// name order, and returns the decoded model.
func LoadDirectory(dir string) (*model.Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read input directory").
			WithContext("path", dir).
			Build()
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), FileSuffix) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, errors.NewError(errors.CategoryModel, "no doc-model files found in input directory").
			WithContext("path", dir).
			WithContext("suffix", FileSuffix).
			Build()
	}

	m := &model.Model{}
	for _, name := range files {
		pkg, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		m.Packages = append(m.Packages, pkg)
	}
	return m, nil
}

// LoadFile decodes one package's doc-model file.
func LoadFile(path string) (*model.Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read doc-model file").
			WithContext("path", path).
			Build()
	}

	var root wireItem
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapError(err, errors.CategoryModel, "failed to decode doc-model file").
			WithContext("path", path).
			Build()
	}
	if model.Kind(root.Kind) != model.KindPackage {
		return nil, errors.NewError(errors.CategoryModel, "doc-model file root must be a package").
			WithContext("path", path).
			WithContext("kind", root.Kind).
			Build()
	}

	pkg := decode(root, path)
	pkg.AttachParents()
	return pkg, nil
}

// decode converts a wire item tree to declarations. Unknown kinds are
// carried through as-is; downstream predicates ignore them.
func decode(w wireItem, path string) *model.Declaration {
	kind := model.Kind(w.Kind)
	if !knownKind(kind) {
		slog.Debug("Unknown declaration kind in doc-model file; carrying it through",
			logfields.Kind(w.Kind), logfields.Item(w.Name), logfields.Path(path))
	}

	d := &model.Declaration{
		Kind:            kind,
		DisplayName:     w.Name,
		ReleaseTag:      releaseTag(w.ReleaseTag),
		Static:          w.IsStatic,
		EventProperty:   w.IsEvent,
		OverloadIndex:   w.OverloadIndex,
		ExcerptText:     w.Excerpt,
		ExtendsText:     w.Extends,
		ImplementsTexts: w.Implements,
		ExtendsTexts:    w.ExtendsTypes,
		ReturnTypeText:  w.ReturnType,
		TypeText:        w.Type,
		InitializerText: w.Initializer,
	}
	if w.DocComment != "" {
		d.Comment = comments.ParseDoc(w.DocComment)
	}
	for _, p := range w.Parameters {
		d.Parameters = append(d.Parameters, model.Parameter{Name: p.Name, TypeText: p.Type})
	}
	for _, child := range w.Members {
		d.Members = append(d.Members, decode(child, path))
	}
	return d
}

func knownKind(k model.Kind) bool {
	switch k {
	case model.KindPackage, model.KindEntryPoint, model.KindNamespace,
		model.KindClass, model.KindInterface, model.KindEnum, model.KindEnumMember,
		model.KindMethod, model.KindMethodSignature,
		model.KindProperty, model.KindPropertySignature,
		model.KindFunction, model.KindVariable, model.KindTypeAlias:
		return true
	}
	return false
}

func releaseTag(raw string) model.ReleaseTag {
	switch strings.ToLower(raw) {
	case "public":
		return model.ReleasePublic
	case "beta":
		return model.ReleaseBeta
	case "alpha":
		return model.ReleaseAlpha
	case "internal":
		return model.ReleaseInternal
	}
	return model.ReleaseNone
}
