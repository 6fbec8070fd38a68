// Command winepaint renders wine portraits from JSON attribute files.
//
// Render one file:
//
//	winepaint -in riesling.json -out riesling.png -size 512
//
// Render several files side by side, each next to its input or into -outdir:
//
//	winepaint -outdir ./portraits -jobs 4 wines/*.json
//
// Watch a directory and re-render every attribute file that changes:
//
//	winepaint -watch ./wines -outdir ./portraits
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/winepaint"
	"github.com/gogpu/winepaint/internal/parallel"
)

type config struct {
	in     string
	out    string
	size   int
	seed   uint64
	fonts  string
	watch  string
	outDir string
	jobs   int
	debug  bool
	args   []string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "attribute JSON file (- for stdin)")
	flag.StringVar(&cfg.out, "out", "wine.png", "output PNG file")
	flag.IntVar(&cfg.size, "size", 512, "canvas side in pixels")
	flag.Uint64Var(&cfg.seed, "seed", winepaint.DefaultSeed, "random seed")
	flag.StringVar(&cfg.fonts, "fonts", "", "comma-separated label font files tried before system fonts")
	flag.StringVar(&cfg.watch, "watch", "", "directory of attribute files to watch")
	flag.StringVar(&cfg.outDir, "outdir", "", "output directory in watch mode (default: the watched directory)")
	flag.IntVar(&cfg.jobs, "jobs", 0, "parallel renders for batches (default: GOMAXPROCS)")
	flag.BoolVar(&cfg.debug, "v", false, "debug logging")
	flag.Parse()
	cfg.args = flag.Args()

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	winepaint.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("winepaint failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, log *slog.Logger) error {
	r := newRenderer(cfg)
	if cfg.watch != "" {
		outDir := cfg.outDir
		if outDir == "" {
			outDir = cfg.watch
		}
		return watch(ctx, r, cfg.watch, outDir, cfg.size, cfg.jobs, log)
	}
	if len(cfg.args) > 0 {
		inputs := cfg.args
		if cfg.in != "" {
			inputs = append([]string{cfg.in}, inputs...)
		}
		return renderBatch(r, inputs, cfg.outDir, cfg.size, cfg.jobs, log)
	}
	if cfg.in == "" {
		return fmt.Errorf("one of -in, -watch or input files is required")
	}

	rec, err := readAttributes(cfg.in, os.Stdin)
	if err != nil {
		return err
	}
	return renderOne(r, rec, cfg.size, cfg.out, log)
}

// renderBatch renders every input on a worker pool. An empty outDir puts
// each PNG next to its input.
func renderBatch(r *winepaint.Renderer, inputs []string, outDir string, size, jobs int, log *slog.Logger) error {
	pool := parallel.NewPool(min(jobs, len(inputs)))
	defer pool.Close()

	batch := make([]parallel.Job, len(inputs))
	for i, in := range inputs {
		batch[i] = func() error {
			rec, err := winepaint.LoadAttributes(in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			dir := outDir
			if dir == "" {
				dir = filepath.Dir(in)
			}
			return renderOne(r, rec, size, outputPath(in, dir), log)
		}
	}
	return pool.Run(batch)
}

func newRenderer(cfg config) *winepaint.Renderer {
	opts := []winepaint.Option{winepaint.WithSeed(cfg.seed)}
	if cfg.fonts != "" {
		opts = append(opts, winepaint.WithFontPaths(splitList(cfg.fonts)...))
	}
	return winepaint.NewRenderer(opts...)
}

func readAttributes(path string, stdin io.Reader) (winepaint.AttributeRecord, error) {
	if path != "-" {
		return winepaint.LoadAttributes(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return winepaint.DefaultAttributes(), fmt.Errorf("read stdin: %w", err)
	}
	return winepaint.ParseAttributes(data)
}

// renderOne renders rec to out and logs the outcome under a fresh request id.
func renderOne(r *winepaint.Renderer, rec winepaint.AttributeRecord, size int, out string, log *slog.Logger) error {
	id := uuid.New().String()
	start := time.Now()

	img, stats, err := r.RenderWithStats(rec, size)
	if err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}
	if err := r.WritePNG(out, img); err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}

	log.Info("rendered",
		slog.String("id", id),
		slog.String("out", out),
		slog.String("family", stats.Family.String()),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
		slog.Int("rings", len(stats.Rings)),
		slog.Int("marks", stats.Marks()),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, filepath.Clean(p))
		}
	}
	return out
}
