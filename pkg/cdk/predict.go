package cdk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cycl/pkg/node"
)

var templateSuffixes = map[string]func([]byte, *log.Logger) ([]string, error){
	".template.json": jsonImports,
	".template.yaml": yamlImports,
	".template.yml":  yamlImports,
}

// ForwardReferences maps every export name imported by a template under
// path to the importing stacks. path is validated with [ValidateOutDir].
//
// Each importer record carries the importing stack's name and the imported
// export name. A nil logger falls back to log.Default().
func ForwardReferences(path string, logger *log.Logger) (map[string][]node.Record, error) {
	if logger == nil {
		logger = log.Default()
	}
	root, err := ValidateOutDir(path)
	if err != nil {
		return nil, err
	}

	s := &scanner{
		logger:    logger,
		manifests: make(map[string]*manifest),
		refs:      make(map[string][]node.Record),
	}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for suffix, parse := range templateSuffixes {
			if strings.HasSuffix(d.Name(), suffix) {
				return s.scan(p, parse)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.refs, nil
}

type scanner struct {
	logger    *log.Logger
	manifests map[string]*manifest // keyed by directory
	refs      map[string][]node.Record
}

func (s *scanner) scan(path string, parse func([]byte, *log.Logger) ([]string, error)) error {
	s.logger.Debug("processing template", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	imports, err := parse(data, s.logger)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(imports) == 0 {
		return nil
	}
	s.logger.Debug("found imported exports", "path", path, "exports", imports)

	stack, err := s.stackName(path)
	if err != nil {
		return err
	}
	if stack == "" {
		s.logger.Warn("unable to determine stack name for template", "template", filepath.Base(path))
		return nil
	}
	for _, name := range imports {
		s.refs[name] = append(s.refs[name], node.Record{StackName: stack, ExportName: name})
	}
	return nil
}

func (s *scanner) stackName(templatePath string) (string, error) {
	dir := filepath.Dir(templatePath)
	m, ok := s.manifests[dir]
	if !ok {
		var err error
		m, err = readManifest(filepath.Join(dir, "manifest.json"))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			m = &manifest{}
		case err != nil:
			return "", err
		}
		s.manifests[dir] = m
	}

	id := artifactID(filepath.Base(templatePath))
	if _, ok := m.Artifacts[id]; !ok {
		s.logger.Warn("no artifact found in manifest", "template", filepath.Base(templatePath))
		return "", nil
	}
	return m.stackName(id), nil
}
