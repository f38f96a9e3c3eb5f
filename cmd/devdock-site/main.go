package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"

	"github.com/justtnz/devdock-site/internal/config"
	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/metrics"
	"github.com/justtnz/devdock-site/internal/releases"
	"github.com/justtnz/devdock-site/internal/scaffold"
	"github.com/justtnz/devdock-site/internal/server"
	"github.com/justtnz/devdock-site/internal/site"
	"github.com/justtnz/devdock-site/internal/toc"
	"github.com/justtnz/devdock-site/internal/ux"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	app := &cli.Command{
		Name:        "devdock-site",
		Usage:       "DevDock website and documentation server",
		Version:     version,
		Description: "Run 'devdock-site docs' to browse the documentation catalog from the terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: config.DefaultPath, Usage: "Path to site.yaml"},
		},
		Commands: []*cli.Command{
			initCmd(),
			serveCmd(),
			exportCmd(),
			docsCmd(),
			checkCmd(),
			releasesCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the site over HTTP until interrupted",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Usage: "Address to listen on (overrides config)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			listen := env.cfg.Listen
			if l := cmd.String("listen"); l != "" {
				listen = l
			}

			var m *metrics.Metrics
			if env.cfg.MetricsEnabled() {
				m = metrics.New(version, runtime.Version())
			}
			st, err := env.site(m)
			if err != nil {
				return err
			}

			srv := server.New(st, listen, version, env.log)
			srv.SetInstrumentation(m)
			if err := srv.Start(); err != nil {
				return err
			}
			ux.Listening(os.Stdout, env.cfg.Name, "http://"+srv.Addr())

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			select {
			case <-ctx.Done():
			case <-srv.Done():
				return fmt.Errorf("server stopped unexpectedly: %w", srv.Err())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Render every page to static HTML",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Parallel page renders (overrides config)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				return fmt.Errorf("output directory argument is required")
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			workers := env.cfg.ExportWorkers
			if w := cmd.Int("workers"); w > 0 {
				workers = int(w)
			}
			st, err := env.site(nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			n, err := st.Export(ctx, dir, workers)
			if err != nil {
				return err
			}
			ux.Exported(os.Stdout, n, dir)
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "List the documentation catalog or print one page",
		ArgsUsage: "[section [item]]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "toc", Usage: "Print only the page's headings"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			cat := env.catalog
			sectionID, itemID := cmd.Args().Get(0), cmd.Args().Get(1)

			switch {
			case sectionID == "":
				fmt.Println()
				ux.RenderCatalog(os.Stdout, cat)
				fmt.Println("\nRun 'devdock-site docs <section> <item>' to read a page.")
				return nil
			case itemID == "":
				s, ok := cat.Section(sectionID)
				if !ok {
					return fmt.Errorf("section %q: %w (run 'devdock-site docs' to list sections)", sectionID, docs.ErrNotFound)
				}
				ux.RenderSection(os.Stdout, s)
				return nil
			}

			if _, err := cat.Lookup(sectionID, itemID); err != nil {
				return err
			}
			pos := cat.IndexOf(sectionID, itemID)
			e := cat.Flatten()[pos]
			prev, next := cat.Neighbors(sectionID, itemID)
			ux.RenderItem(os.Stdout, e, prev, next, cmd.Bool("toc"))
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate the catalog and report anchor problems",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict", Usage: "Exit non-zero when any warning is reported"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			st, err := env.site(nil)
			if err != nil {
				return err
			}
			findings, err := st.Check()
			if err != nil {
				return err
			}

			headings := 0
			for _, e := range env.catalog.Flatten() {
				headings += len(toc.Extract(e.Item.Content))
			}
			ux.OK(os.Stdout, "catalog valid: %d sections, %d pages, %d headings",
				len(env.catalog.Sections()), env.catalog.Len(), headings)
			for _, f := range findings {
				ux.Warn(os.Stdout, "%s", f)
			}
			if len(findings) > 0 && cmd.Bool("strict") {
				return fmt.Errorf("check found %d warning(s)", len(findings))
			}
			return nil
		},
	}
}

func releasesCmd() *cli.Command {
	return &cli.Command{
		Name:  "releases",
		Usage: "List published DevDock releases",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 5, Usage: "Number of releases to show (0 for all)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			rc, err := env.releaseClient(nil)
			if err != nil {
				return err
			}
			list, err := rc.List(ctx)
			if err != nil {
				return fmt.Errorf("fetching releases: %w", err)
			}
			ux.RenderReleases(os.Stdout, list, int(cmd.Int("limit")))
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter site.yaml and docs/catalog.yaml",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir, os.Stdout)
		},
	}
}

// environment is everything built at the composition root from config.
type environment struct {
	cfg     *config.Config
	catalog *docs.Catalog
	log     *slog.Logger
}

func setup(cmd *cli.Command) (*environment, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path, cmd.IsSet("config"))
	if err != nil {
		return nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	cat, err := loadCatalog(cfg, path)
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, catalog: cat, log: log}, nil
}

// loadCatalog uses the built-in documentation unless the config names a
// catalog file, which is resolved relative to the config file.
func loadCatalog(cfg *config.Config, configPath string) (*docs.Catalog, error) {
	if cfg.Catalog == "" {
		return docs.Default()
	}
	p := cfg.Catalog
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(configPath), p)
	}
	cat, err := docs.Load(p)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func (e *environment) releaseClient(m *metrics.Metrics) (*releases.Client, error) {
	g := e.cfg.GitHub
	return releases.NewClient(releases.Options{
		APIURL:            g.APIURL,
		Repo:              g.Repo,
		Token:             e.cfg.Token(),
		UserAgent:         "devdock-site/" + version,
		Timeout:           g.Timeout,
		CacheTTL:          g.CacheTTL,
		RequestsPerMinute: g.RequestsPerMinute,
		Metrics:           m,
	})
}

func (e *environment) site(m *metrics.Metrics) (*site.Site, error) {
	rc, err := e.releaseClient(m)
	if err != nil {
		return nil, err
	}
	platform, _ := releases.ParsePlatform(e.cfg.DefaultPlatform)
	return site.New(site.Meta{
		Name:            e.cfg.Name,
		Tagline:         e.cfg.Tagline,
		BaseURL:         e.cfg.BaseURL,
		RepoURL:         e.cfg.RepoURL(),
		ReleasesURL:     e.cfg.ReleasesURL(),
		EditURL:         e.cfg.EditURL,
		DefaultPlatform: platform,
	}, e.catalog, rc, e.log)
}
