// Package config loads the settings for the create_maze_image executable.
//
// Defaults come from MAZE_* environment variables, which may be placed in an
// optional .env file in the working directory. Command-line flags override
// them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	maze "github.com/yalue/region_maze"
)

var (
	// ErrInvalidConfig is returned by Validate for out-of-range settings.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrBadHueRange is returned by ParseHueRange for malformed strings.
	ErrBadHueRange = errors.New("config: bad hue range")
	// ErrBadCorner is returned by ParseCorner for unknown corner names.
	ErrBadCorner = errors.New("config: bad corner")
)

// Holds every setting the executable uses.
type Config struct {
	CellsWide int // Width of the maze, in cells
	CellsHigh int // Height of the maze, in cells
	Regions   int // Number of colored regions
	Hues      maze.HueRange

	// Name of the generator to use. Empty means pick one randomly.
	Generator        string
	GeneratorOptions maze.GeneratorOptions

	// The seed to use. If not positive, the executable picks one.
	RandomSeed int64

	OutputFile string
	Scale      int // Pixels across each cell in the output
	Border     int // Width of the white border, in pixels

	Verbose bool // Log timing information
	Quiet   bool // Don't report the seed
}

// Returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		CellsWide:        100,
		CellsHigh:        100,
		Regions:          8,
		Hues:             maze.FullHueRange,
		Generator:        "",
		GeneratorOptions: maze.DefaultGeneratorOptions(),
		RandomSeed:       -1,
		OutputFile:       "out.png",
		Scale:            1,
		Border:           0,
	}
}

// Used internally when reading environment defaults. Records the first parse
// error so the caller can check it once at the end.
type envReader struct {
	err error
}

func (r *envReader) setErr(key string, e error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: environment variable %s: %s",
			ErrInvalidConfig, key, e)
	}
}

func (r *envReader) str(key string, dst *string) {
	if value, exists := os.LookupEnv(key); exists {
		*dst = value
	}
}

func (r *envReader) integer(key string, dst *int) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	v, e := strconv.Atoi(value)
	if e != nil {
		r.setErr(key, e)
		return
	}
	*dst = v
}

func (r *envReader) int64(key string, dst *int64) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	v, e := strconv.ParseInt(value, 10, 64)
	if e != nil {
		r.setErr(key, e)
		return
	}
	*dst = v
}

func (r *envReader) float(key string, dst *float64) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	v, e := strconv.ParseFloat(value, 64)
	if e != nil {
		r.setErr(key, e)
		return
	}
	*dst = v
}

func (r *envReader) boolean(key string, dst *bool) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	v, e := strconv.ParseBool(value)
	if e != nil {
		r.setErr(key, e)
		return
	}
	*dst = v
}

// Overrides fields of c from MAZE_* environment variables. Hue and corner
// strings are returned rather than parsed, since flags may replace them.
func fromEnv(c *Config, hues, corner *string) error {
	var r envReader
	o := &(c.GeneratorOptions)
	r.integer("MAZE_CELLS_WIDE", &c.CellsWide)
	r.integer("MAZE_CELLS_HIGH", &c.CellsHigh)
	r.integer("MAZE_REGIONS", &c.Regions)
	r.str("MAZE_HUES", hues)
	r.str("MAZE_GENERATOR", &c.Generator)
	r.float("MAZE_TURN", &o.Turn)
	r.str("MAZE_CORNER", corner)
	r.integer("MAZE_DIFFUSION", &o.Diffusion)
	r.float("MAZE_JOIN_CHANCE", &o.JoinChance)
	r.float("MAZE_DROP_CHANCE", &o.DropChance)
	r.int64("MAZE_RANDOM_SEED", &c.RandomSeed)
	r.str("MAZE_OUTPUT_FILE", &c.OutputFile)
	r.integer("MAZE_SCALE", &c.Scale)
	r.integer("MAZE_BORDER", &c.Border)
	r.boolean("MAZE_VERBOSE", &c.Verbose)
	r.boolean("MAZE_QUIET", &c.Quiet)
	return r.err
}

// Loads the configuration from a .env file (if present), the environment and
// the given command-line arguments, not including the program name. Output
// from the flag package, such as -help text, goes to out.
func Load(args []string, out io.Writer) (*Config, error) {
	// A missing .env file is normal, so its error is ignored.
	_ = godotenv.Load()
	return parse(args, out)
}

// Does everything Load does apart from reading the .env file.
func parse(args []string, out io.Writer) (*Config, error) {
	c := Default()
	hues := "0..360"
	corner := ""
	e := fromEnv(&c, &hues, &corner)
	if e != nil {
		return nil, e
	}

	o := &(c.GeneratorOptions)
	flags := flag.NewFlagSet("create_maze_image", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.IntVar(&c.CellsWide, "cells_wide", c.CellsWide,
		"The width of the maze, in grid cells.")
	flags.IntVar(&c.CellsHigh, "cells_high", c.CellsHigh,
		"The height of the maze, in grid cells.")
	flags.IntVar(&c.Regions, "regions", c.Regions,
		"The number of differently-colored regions.")
	flags.StringVar(&hues, "hues", hues,
		"The range of hues, in degrees. Either from..to, base+offset, "+
			"base±offset, or a single hue h meaning h-30..h+30.")
	flags.StringVar(&c.Generator, "generator", c.Generator,
		"The maze generation algorithm. One of: "+
			strings.Join(maze.GeneratorNames(), ", ")+
			". Picked randomly if empty.")
	flags.Float64Var(&o.Turn, "turn", o.Turn,
		"For growing-tree generators, the probability of moving on after "+
			"opening each wall.")
	flags.StringVar(&corner, "corner", corner,
		"For binary-tree, the corner to bias toward: ne, nw, se or sw. "+
			"Picked randomly if empty.")
	flags.IntVar(&o.Diffusion, "diffusion", o.Diffusion,
		"For sidewinder, larger values give longer horizontal runs. Picked "+
			"randomly if not positive.")
	flags.Float64Var(&o.JoinChance, "join_chance", o.JoinChance,
		"For eller, the probability of joining adjacent cells in a row.")
	flags.Float64Var(&o.DropChance, "drop_chance", o.DropChance,
		"For eller, the probability of extra connections to the next row.")
	flags.Int64Var(&c.RandomSeed, "random_seed", c.RandomSeed,
		"If positive, specifies the random seed to use.")
	flags.StringVar(&c.OutputFile, "output_file", c.OutputFile,
		"The name of the .png file to which the image will be saved.")
	flags.IntVar(&c.Scale, "scale", c.Scale,
		"The width and height of each cell in the image, in pixels.")
	flags.IntVar(&c.Border, "border", c.Border,
		"The width of a white border around the image, in pixels.")
	flags.BoolVar(&c.Verbose, "verbose", c.Verbose,
		"If set, prints timing information.")
	flags.BoolVar(&c.Quiet, "quiet", c.Quiet,
		"If set, doesn't print the random seed.")
	e = flags.Parse(args)
	if e != nil {
		return nil, e
	}
	if flags.NArg() != 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidConfig,
			flags.Arg(0))
	}

	c.Hues, e = ParseHueRange(hues)
	if e != nil {
		return nil, e
	}
	o.Corner, e = ParseCorner(corner)
	if e != nil {
		return nil, e
	}
	e = c.Validate()
	if e != nil {
		return nil, e
	}
	return &c, nil
}

// Returns an error wrapping ErrInvalidConfig if any setting is unusable.
func (c *Config) Validate() error {
	if (c.CellsWide < 1) || (c.CellsHigh < 1) {
		return fmt.Errorf("%w: the maze must be at least 1x1 cells, got "+
			"%dx%d", ErrInvalidConfig, c.CellsWide, c.CellsHigh)
	}
	if c.Regions < 1 {
		return fmt.Errorf("%w: at least one region is required, got %d",
			ErrInvalidConfig, c.Regions)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %d",
			ErrInvalidConfig, c.Scale)
	}
	if c.Border < 0 {
		return fmt.Errorf("%w: border can't be negative, got %d",
			ErrInvalidConfig, c.Border)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("%w: no output file", ErrInvalidConfig)
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("%w: verbose and quiet can't both be set",
			ErrInvalidConfig)
	}
	e := c.GeneratorOptions.Validate()
	if e != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, e)
	}
	// The options are known to be good here, so this only checks the name.
	if c.Generator != "" {
		_, e = maze.NewGenerator(c.Generator, c.GeneratorOptions)
		if e != nil {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, e)
		}
	}
	return nil
}

// Parses a hue range in degrees. Accepts "from..to", "base+offset" or
// "base±offset" (both meaning base-offset..base+offset), or a single number h
// meaning h-30..h+30.
func ParseHueRange(s string) (maze.HueRange, error) {
	parseTwo := func(a, b string) (float64, float64, error) {
		x, e := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if e != nil {
			return 0, 0, fmt.Errorf("%w %q: %s", ErrBadHueRange, s, e)
		}
		y, e := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if e != nil {
			return 0, 0, fmt.Errorf("%w %q: %s", ErrBadHueRange, s, e)
		}
		return x, y, nil
	}
	// Checked first so that exponents like "1e+2" aren't split on the "+".
	h, e := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if e == nil {
		return maze.HueRange{From: h - 30, To: h + 30}, nil
	}
	if parts := strings.Split(s, ".."); len(parts) == 2 {
		from, to, e := parseTwo(parts[0], parts[1])
		if e != nil {
			return maze.HueRange{}, e
		}
		return maze.HueRange{From: from, To: to}, nil
	}
	for _, separator := range []string{"+", "±"} {
		parts := strings.Split(s, separator)
		if len(parts) != 2 {
			continue
		}
		base, offset, e := parseTwo(parts[0], parts[1])
		if e != nil {
			return maze.HueRange{}, e
		}
		return maze.HueRange{From: base - offset, To: base + offset}, nil
	}
	return maze.HueRange{}, fmt.Errorf("%w %q: %s", ErrBadHueRange, s, e)
}

// Parses a corner name for the binary-tree generator. The empty string means
// a randomly chosen corner.
func ParseCorner(s string) (maze.Corner, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return maze.CornerRandom, nil
	case "ne", "northeast":
		return maze.Northeast, nil
	case "nw", "northwest":
		return maze.Northwest, nil
	case "se", "southeast":
		return maze.Southeast, nil
	case "sw", "southwest":
		return maze.Southwest, nil
	}
	return maze.CornerRandom, fmt.Errorf("%w: %q (must be one of ne, nw, "+
		"se or sw)", ErrBadCorner, s)
}
