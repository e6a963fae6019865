package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Sentinel errors for job discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// docxExt is the extension of generated documents, without the dot.
const docxExt = "docx"

// job pairs a Markdown source with the .docx file it becomes.
type job struct {
	Source string
	Target string
}

// collectJobs lists the documents to build from inputPath: one job for a
// file, one per Markdown file for a directory tree. Hidden directories
// (.git, .obsidian, ...) are not entered.
func collectJobs(inputPath, outputDir string) ([]job, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := checkMarkdownExt(inputPath); err != nil {
			return nil, err
		}
		return []job{{Source: inputPath, Target: targetPath(inputPath, outputDir, "")}}, nil
	}

	var jobs []job
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if hasMarkdownExt(path) {
			jobs = append(jobs, job{Source: path, Target: targetPath(path, outputDir, inputPath)})
		}
		return nil
	})
	return jobs, err
}

// targetPath places the .docx built from source:
//   - beside the source when outputDir is empty;
//   - at outputDir itself when it names a .docx file;
//   - under outputDir, keeping the source's position below root, otherwise.
func targetPath(source, outputDir, root string) string {
	name, _ := fileutil.ReplaceExt(filepath.Base(source), docxExt)

	switch {
	case outputDir == "":
		return filepath.Join(filepath.Dir(source), name)
	case strings.EqualFold(filepath.Ext(outputDir), "."+docxExt):
		return outputDir
	case root != "":
		if rel, err := filepath.Rel(root, source); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), name)
		}
	}
	return filepath.Join(outputDir, name)
}

func hasMarkdownExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func checkMarkdownExt(path string) error {
	if !hasMarkdownExt(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers accepts 0 (automatic) up to md2docx.MaxWorkers.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2docx.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2docx.MaxWorkers)
	}
	return nil
}
