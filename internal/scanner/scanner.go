// Package scanner walks a directory of source documents and feeds their
// pre-extracted text through the herb extractor, merging results per herb
// across documents.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jchesterman/apothecary/internal/extract"
	"github.com/jchesterman/apothecary/internal/model"
	"github.com/jchesterman/apothecary/internal/names"
)

// Scanner processes .pdf sources in a directory. PDF parsing itself is out
// of scope: each document's plain text is expected in a sidecar file
// (doc.txt or doc.pdf.txt) produced by an external tool.
type Scanner struct {
	ex     *extract.Extractor
	logger *log.Logger
}

func New(ex *extract.Extractor, logger *log.Logger) *Scanner {
	return &Scanner{ex: ex, logger: logger}
}

// ProcessDirectory extracts herbs from every .pdf source in dir, in sorted
// filename order, and merges records for herbs appearing in more than one
// document. A directory with no sources yields an empty result.
func (s *Scanner) ProcessDirectory(dir string) ([]model.ExtractedHerb, error) {
	pdfs, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(pdfs)

	if len(pdfs) == 0 {
		s.logger.Warn("no PDF files found", "dir", dir)
		return nil, nil
	}
	s.logger.Info("found PDF files to process", "count", len(pdfs))

	merged := make(map[string]*model.ExtractedHerb)
	var order []string

	for _, pdf := range pdfs {
		herbs, err := s.processFile(pdf)
		if err != nil {
			s.logger.Warn("skipping document", "file", filepath.Base(pdf), "error", err)
			continue
		}
		for _, h := range herbs {
			key := names.Normalize(h.Name)
			if have, ok := merged[key]; ok {
				extract.MergeHerb(have, h)
			} else {
				herb := h
				merged[key] = &herb
				order = append(order, key)
			}
		}
	}

	result := make([]model.ExtractedHerb, 0, len(order))
	for _, key := range order {
		result = append(result, *merged[key])
	}
	s.logger.Info("extraction complete", "unique_herbs", len(result))
	return result, nil
}

// processFile extracts herbs from one .pdf source via its sidecar text.
func (s *Scanner) processFile(pdfPath string) ([]model.ExtractedHerb, error) {
	name := filepath.Base(pdfPath)
	s.logger.Debug("processing", "file", name)

	text, err := sidecarText(pdfPath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("no text for document", "file", name)
		return nil, nil
	}

	herbs := s.ex.Extract(text, name)
	s.logger.Debug("extracted herbs", "file", name, "count", len(herbs))
	return herbs, nil
}

// sidecarText reads the pre-extracted plain text for a .pdf source,
// looking for doc.txt first, then doc.pdf.txt.
func sidecarText(pdfPath string) (string, error) {
	candidates := []string{
		strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".txt",
		pdfPath + ".txt",
	}
	for _, p := range candidates {
		b, err := os.ReadFile(p)
		if err == nil {
			return string(b), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("no sidecar text for %s (expected %s)", filepath.Base(pdfPath), filepath.Base(candidates[0]))
}
