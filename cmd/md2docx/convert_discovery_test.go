package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2docx/internal/config"
)

func TestResolveInputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		cfg     *config.Config
		want    string
		wantErr error
	}{
		{
			name: "args takes precedence over config",
			args: []string{"doc.md"},
			cfg:  &config.Config{Input: config.InputConfig{DefaultDir: "./default/"}},
			want: "doc.md",
		},
		{
			name: "config fallback when no args",
			args: []string{},
			cfg:  &config.Config{Input: config.InputConfig{DefaultDir: "./default/"}},
			want: "./default/",
		},
		{
			name:    "error when no args and no config",
			args:    []string{},
			cfg:     &config.Config{},
			wantErr: ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveInputPath(tt.args, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveInputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputDir(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Output: config.OutputConfig{DefaultDir: "./default/"}}
	if got := resolveOutputDir("./out/", cfg); got != "./out/" {
		t.Errorf("flag: resolveOutputDir() = %q, want ./out/", got)
	}
	if got := resolveOutputDir("", cfg); got != "./default/" {
		t.Errorf("config: resolveOutputDir() = %q, want ./default/", got)
	}
	if got := resolveOutputDir("", &config.Config{}); got != "" {
		t.Errorf("none: resolveOutputDir() = %q, want empty", got)
	}
}

func TestTargetPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		outputDir string
		root      string
		want      string
	}{
		{"beside the source", filepath.Join("docs", "a.md"), "", "", filepath.Join("docs", "a.docx")},
		{"markdown extension", filepath.Join("docs", "b.markdown"), "", "", filepath.Join("docs", "b.docx")},
		{"explicit file", "a.md", "report.docx", "", "report.docx"},
		{"explicit file upper case", "a.md", "REPORT.DOCX", "", "REPORT.DOCX"},
		{"output directory", "a.md", "out", "", filepath.Join("out", "a.docx")},
		{
			name:      "tree mirrored",
			source:    filepath.Join("docs", "guide", "c.md"),
			outputDir: "out",
			root:      "docs",
			want:      filepath.Join("out", "guide", "c.docx"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := targetPath(tt.source, tt.outputDir, tt.root); got != tt.want {
				t.Errorf("targetPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectJobs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{
		"a.md",
		filepath.Join("sub", "b.markdown"),
		filepath.Join("sub", "D.MD"),
		"notes.txt",
		filepath.Join("sub", "c.pdf"),
		filepath.Join(".git", "hidden.md"),
	} {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("# x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		jobs, err := collectJobs(root, "")
		if err != nil {
			t.Fatalf("collectJobs() error = %v", err)
		}
		sort.Slice(jobs, func(i, j int) bool { return jobs[i].Source < jobs[j].Source })
		want := []job{
			{Source: filepath.Join(root, "a.md"), Target: filepath.Join(root, "a.docx")},
			{Source: filepath.Join(root, "sub", "D.MD"), Target: filepath.Join(root, "sub", "D.docx")},
			{Source: filepath.Join(root, "sub", "b.markdown"), Target: filepath.Join(root, "sub", "b.docx")},
		}
		if diff := cmp.Diff(want, jobs); diff != "" {
			t.Errorf("collectJobs() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		jobs, err := collectJobs(filepath.Join(root, "a.md"), "out")
		if err != nil {
			t.Fatalf("collectJobs() error = %v", err)
		}
		if len(jobs) != 1 || jobs[0].Target != filepath.Join("out", "a.docx") {
			t.Errorf("collectJobs() = %+v", jobs)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := collectJobs(filepath.Join(root, "notes.txt"), "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want %v", err, ErrInvalidExtension)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := collectJobs(filepath.Join(root, "nope.md"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want %v", err, os.ErrNotExist)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 16} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, 17} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want %v", n, err, ErrInvalidWorkerCount)
		}
	}
}
