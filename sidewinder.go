package maze

// Works through the grid one row at a time, carving horizontal "runs" of
// cells and connecting each run to the row above through one random cell.
// The top row is a single open corridor.
type Sidewinder struct {
	// A run is closed with probability 1 / (Diffusion + 1), so larger values
	// give longer horizontal corridors. If this is <= 0, Generate chooses
	// between 1 and 4 using its random source.
	Diffusion int
}

func (s *Sidewinder) Name() string {
	return "sidewinder"
}

func (s *Sidewinder) Generate(rng RandomSource, width, height int) *Grid {
	toReturn := NewGrid(width, height, false)
	diffusion := s.Diffusion
	if diffusion <= 0 {
		diffusion = 1
		if rng.Chance(0.5) {
			diffusion = 4
		}
	}
	if toReturn.CellCount() == 0 {
		return toReturn
	}

	// The first row has no north walls to open, so it's one long run.
	for x := 0; x < (width - 1); x++ {
		toReturn.SetOpen(East, Position{x, 0}, true)
	}

	for y := 1; y < height; y++ {
		runStart := 0
		for x := 0; x < width; x++ {
			closeRun := (x == (width - 1)) || (rng.Intn(diffusion+1) == 0)
			if !closeRun {
				toReturn.SetOpen(East, Position{x, y}, true)
				continue
			}
			// Connect the run to the row above through one of its cells.
			up := runStart + rng.Intn(x-runStart+1)
			toReturn.SetOpen(North, Position{up, y}, true)
			runStart = x + 1
		}
	}
	return toReturn
}
