package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/justtnz/devdock-site/internal/releases"
)

const filePerms = 0o644

var redirectTmpl = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8">
<meta http-equiv="refresh" content="0; url={{.}}">
<link rel="canonical" href="{{.}}">
<title>Redirecting</title></head>
<body><a href="{{.}}">Continue to the documentation</a></body></html>
`))

type exportJob struct {
	path   string
	render func(context.Context, io.Writer) error
}

// Pages lists the relative output path of every exported file in write
// order.
func (s *Site) Pages() []string {
	jobs := s.exportJobs()
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.path
	}
	return out
}

func (s *Site) exportJobs() []exportJob {
	jobs := []exportJob{
		{"index.html", func(_ context.Context, w io.Writer) error { return s.RenderHome(w) }},
		{"404.html", func(_ context.Context, w io.Writer) error { return s.RenderNotFound(w) }},
		{"releases/index.html", s.RenderReleases},
		{"download/index.html", func(ctx context.Context, w io.Writer) error {
			return s.RenderDownload(ctx, w, s.meta.DefaultPlatform)
		}},
	}
	for _, p := range releases.Platforms {
		jobs = append(jobs, exportJob{
			path: filepath.Join("download", string(p), "index.html"),
			render: func(ctx context.Context, w io.Writer) error {
				return s.RenderDownload(ctx, w, p)
			},
		})
	}
	if first, ok := s.catalog.First(); ok {
		jobs = append(jobs, exportJob{"docs/index.html", func(_ context.Context, w io.Writer) error {
			return redirectTmpl.Execute(w, first.Path())
		}})
	}
	for _, e := range s.catalog.Flatten() {
		jobs = append(jobs, exportJob{
			path: filepath.Join("docs", e.SectionID, e.Item.ID, "index.html"),
			render: func(_ context.Context, w io.Writer) error {
				return s.RenderDoc(w, e.SectionID, e.Item.ID)
			},
		})
	}
	return jobs
}

// Export renders every page under dir using up to workers goroutines. Each
// file is replaced atomically, so a failed export never leaves a truncated
// page behind. It returns the number of files written.
func (s *Site) Export(ctx context.Context, dir string, workers int) (int, error) {
	if workers <= 0 {
		workers = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	jobs := s.exportJobs()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := j.render(ctx, &buf); err != nil {
				return fmt.Errorf("export %s: %w", j.path, err)
			}
			return writePage(filepath.Join(dir, j.path), &buf)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	s.log.Info("export complete", "dir", dir, "pages", len(jobs))
	return len(jobs), nil
}

func writePage(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := atomic.WriteFile(path, r); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	// atomic.WriteFile leaves new files with the temp file's 0600
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
