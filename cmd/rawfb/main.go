// Command rawfb animates the ship and plane scene on a Linux framebuffer.
//
// Usage:
//
//	rawfb [flags]
//
// By default rawfb tries /dev/fb0 and falls back to an in-memory surface,
// which is only useful together with -snapshot. Interrupt or terminate the
// process to stop an unbounded run.
//
// Examples:
//
//	rawfb -backend fbdev -device /dev/fb1
//	rawfb -backend memory -frames 120 -snapshot frame.png -scale 2
//	rawfb -backend memory -frames 100 -snapshot 'out/frame-%03d.bmp' -snapshot-every 10
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rawfb"
	"github.com/gogpu/rawfb/render"
	"github.com/gogpu/rawfb/scene"
	"github.com/gogpu/rawfb/surface"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		stop()
		log.Fatalf("rawfb: %v", err)
	}
}

// config holds the parsed command line.
type config struct {
	backend       string
	device        string
	width, height int
	frames        int
	snapshot      string
	snapshotEvery int
	scale         int
	background    rawfb.RGB
	border        rawfb.RGB
	canvas        rawfb.RGB
	lang          language.Tag
	debug         bool
}

func parseFlags(args []string, out io.Writer) (*config, error) {
	fs := flag.NewFlagSet("rawfb", flag.ContinueOnError)
	fs.SetOutput(out)

	var cfg config
	var background, border, canvasHex, lang string
	fs.StringVar(&cfg.backend, "backend", "auto", "surface backend: auto, fbdev or memory")
	fs.StringVar(&cfg.device, "device", surface.DefaultDevice, "framebuffer device for the fbdev backend")
	fs.IntVar(&cfg.width, "width", 1366, "surface width for the memory backend")
	fs.IntVar(&cfg.height, "height", 768, "surface height for the memory backend")
	fs.IntVar(&cfg.frames, "frames", 0, "number of frames to render (0 runs until interrupted)")
	fs.StringVar(&cfg.snapshot, "snapshot", "", "write the surface to this .png or .bmp file (may contain a %d frame verb)")
	fs.IntVar(&cfg.snapshotEvery, "snapshot-every", 0, "also write a snapshot every N frames")
	fs.IntVar(&cfg.scale, "scale", 1, "integer upscaling factor for snapshots")
	fs.StringVar(&background, "background", "#212121", "frame background color")
	fs.StringVar(&border, "border", "#636363", "canvas border color")
	fs.StringVar(&canvasHex, "canvas", "#000000", "canvas color")
	fs.StringVar(&lang, "lang", "en", "language tag for the summary line")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch cfg.backend {
	case "auto", "fbdev", "memory":
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.backend)
	}
	if cfg.frames < 0 || cfg.snapshotEvery < 0 || cfg.scale < 1 {
		return nil, errors.New("-frames and -snapshot-every must not be negative and -scale must be at least 1")
	}

	var err error
	if cfg.background, err = parseColor(background); err != nil {
		return nil, fmt.Errorf("-background: %w", err)
	}
	if cfg.border, err = parseColor(border); err != nil {
		return nil, fmt.Errorf("-border: %w", err)
	}
	if cfg.canvas, err = parseColor(canvasHex); err != nil {
		return nil, fmt.Errorf("-canvas: %w", err)
	}
	if cfg.lang, err = language.Parse(lang); err != nil {
		return nil, fmt.Errorf("-lang: %w", err)
	}
	return &cfg, nil
}

// parseColor reads a "#rrggbb" hex color. The leading '#' is optional.
func parseColor(s string) (rawfb.RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return rawfb.RGB{}, err
	}
	r, g, b := c.RGB255()
	return rawfb.RGB{R: r, G: g, B: b}, nil
}

// snapshotPath expands a %d style verb in pattern with the frame number.
func snapshotPath(pattern string, frame int) string {
	if strings.Contains(pattern, "%") {
		return fmt.Sprintf(pattern, frame)
	}
	return pattern
}

func openSurface(cfg *config) (surface.Device, error) {
	opts := surface.Options{Width: cfg.width, Height: cfg.height, Device: cfg.device}
	if cfg.backend == "auto" {
		return surface.Open(opts)
	}
	return surface.OpenByName(cfg.backend, opts)
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	rawfb.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer rawfb.SetLogger(nil)
	logger := rawfb.LoggerFor("cmd")

	dev, err := openSurface(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil {
			logger.Warn("closing surface failed", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("surface opened",
		slog.Int("width", dev.Width()),
		slog.Int("height", dev.Height()),
		slog.String("format", dev.Format().String()))

	sc := scene.DefaultConfig()
	sc.ScreenWidth, sc.ScreenHeight = dev.Width(), dev.Height()

	opts := []render.Option{
		render.WithBackground(cfg.background),
		render.WithBorder(cfg.border),
		render.WithCanvasColor(cfg.canvas),
	}
	if cfg.snapshot != "" && cfg.snapshotEvery > 0 {
		opts = append(opts, render.WithFrameHook(func(frame int, s rawfb.Surface) error {
			if (frame+1)%cfg.snapshotEvery != 0 {
				return nil
			}
			return surface.SaveSnapshot(snapshotPath(cfg.snapshot, frame), surface.Snapshot(s), cfg.scale)
		}))
	}

	r, err := render.New(dev, sc, opts...)
	if err != nil {
		return err
	}

	cont := func(int) bool { return true }
	if cfg.frames > 0 {
		cont = func(frame int) bool { return frame < cfg.frames }
	}
	stats, err := r.Run(ctx, scene.NewState(sc), cont)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if cfg.snapshot != "" && stats.Frames > 0 {
		path := snapshotPath(cfg.snapshot, stats.Frames-1)
		if err := surface.SaveSnapshot(path, surface.Snapshot(dev), cfg.scale); err != nil {
			return err
		}
		logger.Info("snapshot written", slog.String("path", path))
	}

	p := message.NewPrinter(cfg.lang)
	p.Fprintf(stderr, "rendered %d frames in %.2f s (%.1f fps)\n",
		stats.Frames, stats.Elapsed.Seconds(), stats.FPS())
	return nil
}
