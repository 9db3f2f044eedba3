// Package batch runs the extraction pipeline over a directory of exported
// receipt files.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/g-caf/bootleg-expensify-sub000/internal/engine"
	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
	"github.com/g-caf/bootleg-expensify-sub000/internal/textutils"
)

// FileResult pairs one input file with its pipeline outcome.
type FileResult struct {
	Path   string
	Result engine.Result
}

// Processor feeds directory contents through the engine. Only .txt and
// .html/.htm files are picked up; HTML is converted to plain text first.
type Processor struct {
	engine *engine.Engine
	logger logging.Logger
}

// NewProcessor creates a batch processor.
func NewProcessor(eng *engine.Engine, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{engine: eng, logger: logger}
}

// ProcessDirectory processes every supported file in the directory in
// lexical order. Unreadable files log a warning and are skipped; the batch
// continues.
func (p *Processor) ProcessDirectory(dir string) ([]FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	p.logger.WithFields(
		logging.Field{Key: "dir", Value: dir},
		logging.Field{Key: "files", Value: len(paths)},
	).Info("Processing directory")

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		doc, err := p.loadDocument(path)
		if err != nil {
			p.logger.WithError(err).WithField("file", path).Warn("Skipping unreadable file")
			continue
		}
		results = append(results, FileResult{Path: path, Result: p.engine.Process(doc)})
	}

	return results, nil
}

// ProcessFile processes a single file.
func (p *Processor) ProcessFile(path string) (FileResult, error) {
	doc, err := p.loadDocument(path)
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{Path: path, Result: p.engine.Process(doc)}, nil
}

func (p *Processor) loadDocument(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("error reading file: %w", err)
	}

	doc := models.Document{Filename: filepath.Base(path)}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		doc.HTMLSource = string(data)
		doc.Text = textutils.HTMLToText(string(data))
	default:
		doc.Text = textutils.NormalizeLines(string(data))
	}
	return doc, nil
}
