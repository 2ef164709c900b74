// This defines a basic executable for generating a maze and saving it as an
// image colored by distance through the maze.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/yalue/image_utils"
	maze "github.com/yalue/region_maze"
	"github.com/yalue/region_maze/config"
	"golang.org/x/image/draw"
)

// Runs fn, logging how long it took at debug level.
func timedStage(logger *log.Entry, stage string, fn func()) {
	startTime := time.Now()
	fn()
	logger.WithFields(log.Fields{
		"stage":   stage,
		"elapsed": time.Since(startTime),
	}).Debug("Stage finished")
}

// Like timedStage, for stages that can fail. Returns fn's error.
func timed(logger *log.Entry, stage string, fn func() error) error {
	var e error
	timedStage(logger, stage, func() {
		e = fn()
	})
	return e
}

// Returns a seed based on the current time if the configured one isn't
// positive.
func pickSeed(configured int64) int64 {
	if configured > 0 {
		return configured
	}
	seed := time.Now().UnixNano()
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// Returns the configured generator, or a random one if none was named.
func pickGenerator(c *config.Config, rng maze.RandomSource) (maze.Generator,
	error) {
	if c.Generator == "" {
		return maze.RandomGenerator(rng, c.GeneratorOptions)
	}
	return maze.NewGenerator(c.Generator, c.GeneratorOptions)
}

// Scales the image up so that each cell is scale pixels across, adds the
// border and rasterizes the result.
func finishImage(pic image.Image, scale, border int) *image.RGBA {
	if scale > 1 {
		b := pic.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), pic, b, draw.Src,
			nil)
		pic = scaled
	}
	return image_utils.ToRGBA(maze.AddImageBorder(pic, border, color.White))
}

// Writes pic to the named file in PNG format.
func savePNG(pic image.Image, filename string) error {
	f, e := os.Create(filename)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", filename, e)
	}
	e = png.Encode(f, pic)
	if e != nil {
		f.Close()
		return fmt.Errorf("Error writing image to %s: %w", filename, e)
	}
	return f.Close()
}

// Does all of the work, returning the process exit code.
func run(args []string, stdout io.Writer) int {
	logger := log.New()
	logger.SetOutput(stdout)
	entry := logger.WithField("run", uuid.New().String())

	c, e := config.Load(args, stdout)
	if e != nil {
		if errors.Is(e, flag.ErrHelp) {
			return 0
		}
		entry.WithError(e).Error("Invalid or missing argument. Run with " +
			"-help for more information.")
		return 1
	}
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := pickSeed(c.RandomSeed)
	if !c.Quiet {
		fmt.Fprintf(stdout, "Seed: %d\n", seed)
	}
	rng := maze.NewRand(seed)
	generator, e := pickGenerator(c, rng)
	if e != nil {
		entry.WithError(e).Error("Failed picking a maze generator")
		return 1
	}
	entry = entry.WithFields(log.Fields{
		"generator": generator.Name(),
		"seed":      seed,
		"regions":   c.Regions,
	})

	var grid *maze.Grid
	var finalPic *image.RGBA
	e = timed(entry, "total", func() error {
		timedStage(entry, "generation", func() {
			grid = generator.Generate(rng, c.CellsWide, c.CellsHigh)
		})
		entry.Infof("Generated %dx%d maze with %d open walls OK.",
			grid.Width(), grid.Height(), grid.OpenWallCount())
		timedStage(entry, "rendering", func() {
			regionPic := maze.Render(rng, grid, c.Regions, c.Hues)
			finalPic = finishImage(regionPic, c.Scale, c.Border)
		})
		return timed(entry, "saving", func() error {
			return savePNG(finalPic, c.OutputFile)
		})
	})
	if e != nil {
		entry.WithError(e).Error("Failed saving the image")
		return 1
	}
	entry.Infof("Image %s written OK.", c.OutputFile)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
