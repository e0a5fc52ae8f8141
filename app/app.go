package app

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang/geo/r2"

	tk "modernc.org/tk9.0"

	"github.com/JimmyBainbridge/Neptune-moons/assets"
	"github.com/JimmyBainbridge/Neptune-moons/config"
	"github.com/JimmyBainbridge/Neptune-moons/debug"
	"github.com/JimmyBainbridge/Neptune-moons/domain/coords"
	"github.com/JimmyBainbridge/Neptune-moons/domain/export"
	"github.com/JimmyBainbridge/Neptune-moons/domain/snapshot"
	"github.com/JimmyBainbridge/Neptune-moons/ui/theme"
)

// app owns the session lifecycle: loading coordinates, building the
// container, running the Tk event loop and writing session outputs.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	out       io.Writer
	container *Container
}

// NewApp prepares a labeling session from the given configuration.
func NewApp(cfg *config.Config, logger *slog.Logger) *app {
	return &app{cfg: cfg, logger: logger, out: os.Stdout}
}

// Start runs the interactive session and blocks until the window
// closes, then prints the final mask to standard output.
func (a *app) Start() error {
	pts, err := a.loadPoints()
	if err != nil {
		return fmt.Errorf("load points: %w", err)
	}
	a.logger.Info("session starting",
		slog.Int("points", len(pts)),
		slog.Int("labels", len(a.cfg.Labels)),
	)

	theme.InitStyles()
	a.container = BuildContainer(a.cfg, a.logger, pts, a.writeOutputs, a.saveSnapshot, a.finish)

	tk.App.WmTitle("Neptune moons — lasso labeling")
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.finish)

	if a.cfg.Debug {
		debug.StartStatsLogger(2*time.Second, a.logger)
	}

	tk.App.Wait()
	a.printMask()
	return nil
}

// loadPoints reads the configured coordinate file, falling back to the
// embedded sample fixture.
func (a *app) loadPoints() ([]r2.Point, error) {
	if a.cfg.CoordsPath == "" {
		return assets.SampleCoords()
	}
	return coords.Load(a.cfg.CoordsPath)
}

// finish writes session outputs and closes the window. The mask stays
// queryable after the event loop exits.
func (a *app) finish() {
	a.writeOutputs()
	if a.cfg.SnapshotOnExit {
		a.saveSnapshot()
	}
	tk.Destroy(tk.App)
}

// writeOutputs persists the mask and, when configured, the rendered
// plot. Failures are logged, not fatal: the in-memory mask is still
// printed at exit.
func (a *app) writeOutputs() {
	if a.container == nil {
		return
	}
	mgr := a.container.Manager
	if a.cfg.MaskPath != "" {
		err := export.WriteMask(a.cfg.MaskPath, a.container.Points, mgr.Palette().Names(), mgr.MaskValues())
		if err != nil {
			a.logger.Error("mask export failed", slog.String("path", a.cfg.MaskPath), slog.String("error", err.Error()))
		} else {
			a.logger.Info("mask written", slog.String("path", a.cfg.MaskPath))
		}
	}
	if a.cfg.PlotPath != "" {
		err := export.PlotPNG(a.cfg.PlotPath, a.container.Points, mgr.Palette(), mgr.MaskValues())
		if err != nil {
			a.logger.Error("plot export failed", slog.String("path", a.cfg.PlotPath), slog.String("error", err.Error()))
		} else {
			a.logger.Info("plot written", slog.String("path", a.cfg.PlotPath))
		}
	}
}

// saveSnapshot captures the main window's screen rectangle.
func (a *app) saveSnapshot() {
	if a.cfg.SnapshotPath == "" {
		a.logger.Warn("snapshot requested but no snapshot_path configured")
		return
	}
	rect, ok := windowRect()
	if !ok {
		a.logger.Warn("snapshot skipped: window geometry unavailable")
		return
	}
	if err := snapshot.SavePNG(a.cfg.SnapshotPath, rect); err != nil {
		a.logger.Error("snapshot failed", slog.String("path", a.cfg.SnapshotPath), slog.String("error", err.Error()))
		return
	}
	a.logger.Info("snapshot written", slog.String("path", a.cfg.SnapshotPath))
}

// printMask mirrors the session's primary artifact onto stdout.
func (a *app) printMask() {
	if a.container == nil {
		return
	}
	fmt.Fprintln(a.out, "You created the following mask:")
	fmt.Fprintln(a.out, a.container.Manager.MaskValues())
}

// geomRe matches window geometry strings in the Tk format
// "WIDTHxHEIGHT±X±Y". A "-" anchor places the offset relative to the
// right or bottom screen edge.
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)([+-])(-?\d+)([+-])(-?\d+)$`)

// windowRect parses the main window's Tk geometry into a screen
// rectangle.
func windowRect() (image.Rectangle, bool) {
	screen, err := snapshot.ScreenBounds()
	if err != nil {
		screen = image.Rectangle{}
	}
	return parseGeometry(tk.WmGeometry(tk.App), screen)
}

// parseGeometry converts a Tk geometry string into an absolute screen
// rectangle. Right/bottom-anchored offsets need the screen bounds to
// resolve; with an empty screen rectangle they report failure.
func parseGeometry(g string, screen image.Rectangle) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 7 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	xo, _ := strconv.Atoi(m[4])
	yo, _ := strconv.Atoi(m[6])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	if (m[3] == "-" || m[5] == "-") && screen.Empty() {
		return image.Rectangle{}, false
	}
	x := xo
	if m[3] == "-" {
		x = screen.Max.X - w - xo
	}
	y := yo
	if m[5] == "-" {
		y = screen.Max.Y - h - yo
	}
	return image.Rect(x, y, x+w, y+h), true
}
