package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"linkshelf/internal/config"
	"linkshelf/internal/db"
	"linkshelf/internal/db/mock"
	applog "linkshelf/internal/log"
	"linkshelf/internal/theme"
	"linkshelf/internal/views/pages"
	"linkshelf/models"
	"linkshelf/web"
)

func main() {
	out := flag.String("out", "dist", "directory the static site is written to")
	flag.Parse()

	applog.SetOutput(os.Stderr)
	if err := run(context.Background(), *out); err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}

	var database *gorm.DB
	if cfg.Database.UseMock {
		database, err = mock.New(ctx)
	} else {
		database, err = db.Configure(cfg.Database)
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	profile, err := db.LoadProfile(ctx, database, cfg.Site.Handle)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	return export(ctx, out, cfg.Site, *profile)
}

// export writes index.html under the profile's theme, one page per
// registered theme below themes/<key>/ and the site assets below assets/.
func export(ctx context.Context, out string, siteCfg config.SiteConfig, profile models.Profile) error {
	key, _ := pages.SelectThemeKey(pages.ThemeSources{Profile: profile.Theme, Site: siteCfg.DefaultTheme})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return copyAssets(ctx, filepath.Join(out, "assets"), web.Assets())
	})
	g.Go(func() error {
		return writePage(ctx, filepath.Join(out, "index.html"), siteCfg.Title, profile, key)
	})
	for _, themeKey := range theme.Builtin().Keys() {
		themeKey := themeKey
		g.Go(func() error {
			return writePage(ctx, filepath.Join(out, "themes", themeKey, "index.html"), siteCfg.Title, profile, themeKey)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	applog.Info(ctx, "static site exported", "dir", out, "theme", theme.Resolve(key).Key(), "themes", len(theme.Builtin().Keys()))
	return nil
}

func writePage(ctx context.Context, path, title string, profile models.Profile, key string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	data := pages.NewProfileData(title, profile, key, false)
	data.Static = true
	if err := pages.ProfilePage(data).Render(ctx, file); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	applog.Debug(ctx, "page written", "path", path, "theme", data.Theme.Key())
	return nil
}

// copyAssets mirrors assets into dir, replacing files left by an earlier export.
func copyAssets(ctx context.Context, dir string, assets fs.FS) error {
	return fs.WalkDir(assets, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if entry.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		applog.Debug(ctx, "asset copied", "path", target)
		return nil
	})
}
