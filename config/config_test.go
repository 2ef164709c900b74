package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	maze "github.com/yalue/region_maze"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	c, e := parse(nil, &out)
	require.NoError(t, e)
	assert.Equal(t, Default(), *c)
	assert.Empty(t, out.String())
}

func TestParse_Flags(t *testing.T) {
	c, e := parse([]string{
		"-cells_wide", "30",
		"-cells_high", "20",
		"-regions", "3",
		"-hues", "100..200",
		"-generator", "binary-tree",
		"-corner", "sw",
		"-turn", "0.25",
		"-random_seed", "1337",
		"-output_file", "maze.png",
		"-scale", "4",
		"-border", "10",
		"-verbose",
	}, &bytes.Buffer{})
	require.NoError(t, e)
	assert.Equal(t, 30, c.CellsWide)
	assert.Equal(t, 20, c.CellsHigh)
	assert.Equal(t, 3, c.Regions)
	assert.Equal(t, maze.HueRange{From: 100, To: 200}, c.Hues)
	assert.Equal(t, "binary-tree", c.Generator)
	assert.Equal(t, maze.Southwest, c.GeneratorOptions.Corner)
	assert.Equal(t, 0.25, c.GeneratorOptions.Turn)
	assert.Equal(t, int64(1337), c.RandomSeed)
	assert.Equal(t, "maze.png", c.OutputFile)
	assert.Equal(t, 4, c.Scale)
	assert.Equal(t, 10, c.Border)
	assert.True(t, c.Verbose)
	assert.False(t, c.Quiet)
}

// TestParse_Environment checks that MAZE_* variables replace the defaults and
// that flags still take precedence over them.
func TestParse_Environment(t *testing.T) {
	t.Setenv("MAZE_CELLS_WIDE", "12")
	t.Setenv("MAZE_REGIONS", "5")
	t.Setenv("MAZE_HUES", "200±20")
	t.Setenv("MAZE_GENERATOR", "eller")
	t.Setenv("MAZE_JOIN_CHANCE", "0.9")
	t.Setenv("MAZE_QUIET", "true")
	c, e := parse([]string{"-regions", "7"}, &bytes.Buffer{})
	require.NoError(t, e)
	assert.Equal(t, 12, c.CellsWide)
	assert.Equal(t, 100, c.CellsHigh)
	assert.Equal(t, 7, c.Regions)
	assert.Equal(t, maze.HueRange{From: 180, To: 220}, c.Hues)
	assert.Equal(t, "eller", c.Generator)
	assert.Equal(t, 0.9, c.GeneratorOptions.JoinChance)
	assert.True(t, c.Quiet)
}

func TestParse_BadEnvironment(t *testing.T) {
	t.Setenv("MAZE_CELLS_HIGH", "tall")
	_, e := parse(nil, &bytes.Buffer{})
	assert.ErrorIs(t, e, ErrInvalidConfig)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"ZeroWidth", []string{"-cells_wide", "0"}, ErrInvalidConfig},
		{"NoRegions", []string{"-regions", "0"}, ErrInvalidConfig},
		{"ZeroScale", []string{"-scale", "0"}, ErrInvalidConfig},
		{"NegativeBorder", []string{"-border", "-1"}, ErrInvalidConfig},
		{"NoOutput", []string{"-output_file", ""}, ErrInvalidConfig},
		{"VerboseQuiet", []string{"-verbose", "-quiet"}, ErrInvalidConfig},
		{"UnknownGenerator", []string{"-generator", "hedge"},
			ErrInvalidConfig},
		{"BadTurn", []string{"-turn", "2"}, ErrInvalidConfig},
		{"BadDropChance", []string{"-drop_chance", "-0.5"}, ErrInvalidConfig},
		{"ExtraArgument", []string{"maze.png"}, ErrInvalidConfig},
		{"BadHues", []string{"-hues", "red"}, ErrBadHueRange},
		{"BadCorner", []string{"-corner", "middle"}, ErrBadCorner},
		{"Help", []string{"-help"}, flag.ErrHelp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, e := parse(tc.args, &bytes.Buffer{})
			assert.Nil(t, c)
			assert.ErrorIs(t, e, tc.want)
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	var out bytes.Buffer
	_, e := parse([]string{"-colour", "red"}, &out)
	assert.Error(t, e)
	assert.Contains(t, out.String(), "-cells_wide")
}

func TestParseHueRange(t *testing.T) {
	cases := []struct {
		in   string
		want maze.HueRange
	}{
		{"0..360", maze.HueRange{From: 0, To: 360}},
		{" 300 .. 60 ", maze.HueRange{From: 300, To: 60}},
		{"180+60", maze.HueRange{From: 120, To: 240}},
		{"180±60", maze.HueRange{From: 120, To: 240}},
		{"-20..20.5", maze.HueRange{From: -20, To: 20.5}},
		{"60", maze.HueRange{From: 30, To: 90}},
		{"1e+2", maze.HueRange{From: 70, To: 130}},
		{"1e1..2e+2", maze.HueRange{From: 10, To: 200}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, e := ParseHueRange(tc.in)
			require.NoError(t, e)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "red", "1..2..3", "a..b", "10+x", "±"} {
		_, e := ParseHueRange(bad)
		assert.ErrorIsf(t, e, ErrBadHueRange, "input %q", bad)
	}
}

func TestParseCorner(t *testing.T) {
	cases := map[string]maze.Corner{
		"":          maze.CornerRandom,
		"random":    maze.CornerRandom,
		"ne":        maze.Northeast,
		"NorthWest": maze.Northwest,
		" se ":      maze.Southeast,
		"southwest": maze.Southwest,
	}
	for in, want := range cases {
		got, e := ParseCorner(in)
		require.NoErrorf(t, e, "input %q", in)
		assert.Equalf(t, want, got, "input %q", in)
	}
	_, e := ParseCorner("up")
	assert.ErrorIs(t, e, ErrBadCorner)
}

// TestValidate_Generator checks that a bad option is reported as such even
// when a generator is named, and that an unknown name is still caught when the
// options are fine.
func TestValidate_Generator(t *testing.T) {
	c := Default()
	c.Generator = "kruskal"
	require.NoError(t, c.Validate())

	c.GeneratorOptions.Turn = 3
	e := c.Validate()
	assert.ErrorIs(t, e, ErrInvalidConfig)
	assert.Contains(t, e.Error(), maze.ErrInvalidOption.Error())
	assert.NotContains(t, e.Error(), maze.ErrUnknownGenerator.Error())

	c.GeneratorOptions = maze.DefaultGeneratorOptions()
	c.Generator = "hedge"
	e = c.Validate()
	assert.ErrorIs(t, e, ErrInvalidConfig)
	assert.Contains(t, e.Error(), maze.ErrUnknownGenerator.Error())
}
