//Package diagram renders the flight of the projectile together with the
//screen and the wall
package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gehtsoft-usa/go_bankshot"
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

//Margin is added to the furthest point and to the highest point of the plot, m
const Margin = 2.0

const (
	cWidth  = 6 * vg.Inch
	cHeight = 4 * vg.Inch
)

var (
	trajectoryColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	screenColor     = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	wallColor       = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

//ErrNoPositions is returned when there is nothing to draw
var ErrNoPositions = errors.New("diagram: trajectory has no positions")

//IterationTitle returns the title of the plot of a bisection iteration
func IterationTitle(prefix string, iteration int) string {
	return fmt.Sprintf("%s%04d", prefix, iteration)
}

func barrierLine(b go_bankshot.Barrier, c color.Color) (*plotter.Line, error) {
	x := b.Distance().In(unit.DistanceMeter)
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: b.Height().In(unit.DistanceMeter)}})
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(2)
	return line, nil
}

//TrajectoryPlot creates the plot of the positions and both barriers.
//
//The horizontal axis runs from 0 to the wall or the furthest position,
//whichever is further, plus Margin. The vertical axis runs from 0 to the
//apex or the wall top, whichever is higher, plus Margin.
func TrajectoryPlot(title string, positions []vector.Vector, screen, wall go_bankshot.Barrier) (*plot.Plot, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}

	points := make(plotter.XYs, len(positions))
	maxX := wall.Distance().In(unit.DistanceMeter)
	maxY := wall.Height().In(unit.DistanceMeter)
	for i, p := range positions {
		points[i].X = p.X
		points[i].Y = p.Y
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "distance, m"
	p.Y.Label.Text = "height, m"

	flight, err := plotter.NewLine(points)
	if err != nil {
		return nil, fmt.Errorf("trajectory line: %w", err)
	}
	flight.Color = trajectoryColor
	flight.Width = vg.Points(1)

	screenLine, err := barrierLine(screen, screenColor)
	if err != nil {
		return nil, fmt.Errorf("screen line: %w", err)
	}
	wallLine, err := barrierLine(wall, wallColor)
	if err != nil {
		return nil, fmt.Errorf("wall line: %w", err)
	}

	p.Add(flight, screenLine, wallLine)
	p.Legend.Add("trajectory", flight)
	p.Legend.Add(screen.Name(), screenLine)
	p.Legend.Add(wall.Name(), wallLine)
	p.Legend.Top = true

	p.X.Min = 0
	p.X.Max = maxX + Margin
	p.Y.Min = 0
	p.Y.Max = maxY + Margin
	return p, nil
}

//Save writes the plot to the file. The image format is chosen by the
//extension of the path (png, svg, pdf, jpg, ...).
func Save(path string, p *plot.Plot) error {
	if err := p.Save(cWidth, cHeight, path); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}
	return nil
}

//SaveTrajectory plots the positions and writes the plot to the file
func SaveTrajectory(path, title string, positions []vector.Vector, screen, wall go_bankshot.Barrier) error {
	p, err := TrajectoryPlot(title, positions, screen, wall)
	if err != nil {
		return err
	}
	return Save(path, p)
}

//IterationObserver returns the solver observer which saves the trajectory
//of every bisection iteration to dir as <prefix><iteration>.png.
//
//Failures are logged and do not stop the solver.
func IterationObserver(dir, prefix string, screen, wall go_bankshot.Barrier, logger *slog.Logger) (go_bankshot.IterationObserver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating plot directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return func(i go_bankshot.Iteration) {
		title := IterationTitle(prefix, i.Index)
		path := filepath.Join(dir, title+".png")
		if err := SaveTrajectory(path, title, i.Shot.Trajectory(), screen, wall); err != nil {
			logger.Warn("cannot save iteration plot", "iteration", i.Index, "path", path, "error", err)
			return
		}
		logger.Debug("iteration plot saved", "iteration", i.Index, "path", path)
	}, nil
}
