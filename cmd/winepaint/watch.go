package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/winepaint"
)

// settle is how long a file must stay quiet before it is rendered. Editors
// often write a file in several steps.
const settle = 150 * time.Millisecond

// watch renders every *.json file in dir once, then again whenever it is
// written, until ctx is done.
func watch(ctx context.Context, r *winepaint.Renderer, dir, outDir string, size, jobs int, log *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	existing, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if err := renderBatch(r, existing, outDir, size, jobs, log); err != nil {
		log.Warn("initial render incomplete", slog.String("err", err.Error()))
	}
	log.Info("watching", slog.String("dir", dir), slog.String("outdir", outDir))

	pending := make(map[string]time.Time)
	tick := time.NewTicker(settle / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isAttributeFile(ev.Name) && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending[ev.Name] = time.Now()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", slog.String("err", err.Error()))
		case now := <-tick.C:
			for path, at := range pending {
				if now.Sub(at) < settle {
					continue
				}
				delete(pending, path)
				renderPath(r, path, outDir, size, log)
			}
		}
	}
}

func renderPath(r *winepaint.Renderer, path, outDir string, size int, log *slog.Logger) {
	rec, err := winepaint.LoadAttributes(path)
	if err != nil {
		log.Warn("skipping attribute file", slog.String("path", path), slog.String("err", err.Error()))
		return
	}
	if err := renderOne(r, rec, size, outputPath(path, outDir), log); err != nil {
		log.Warn("render failed", slog.String("path", path), slog.String("err", err.Error()))
	}
}

func isAttributeFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// outputPath maps an attribute file to its PNG in outDir.
func outputPath(path, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(outDir, base+".png")
}
