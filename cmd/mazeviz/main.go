// Command mazeviz generates a maze and shows it off: live terminal
// animation of Wilson's algorithm, plain ASCII output, or a PNG file.
//
// Examples:
//
//	mazeviz -n                      # animate a 16x12 Wilson carve in the terminal
//	mazeviz -x 30 -y 20 -e backtrack
//	mazeviz --solution -o maze.png
//	mazeviz -p presets/demo.yaml
//
// A YAML preset file sets any of width/height/algo/interval/final_pause/
// seed/cell_size; values present in the preset override the corresponding
// flags.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"gopkg.in/yaml.v3"

	"github.com/arvegal/mazecarve/backtrack"
	"github.com/arvegal/mazecarve/grid"
	"github.com/arvegal/mazecarve/randx"
	"github.com/arvegal/mazecarve/render/ascii"
	mazepng "github.com/arvegal/mazecarve/render/png"
	"github.com/arvegal/mazecarve/render/term"
	"github.com/arvegal/mazecarve/solve"
	"github.com/arvegal/mazecarve/wilson"
)

const (
	algoWilson    = "wilson"
	algoBacktrack = "backtrack"
)

type config struct {
	width      int
	height     int
	algo       string
	interval   time.Duration
	finalPause time.Duration
	seed       int64
	cellSize   int

	interactive  bool
	showSolution bool
	outFile      string
	presetPath   string
}

// preset mirrors config for YAML files; pointer fields so absent keys
// leave the flag values alone.
type preset struct {
	Width      *int           `yaml:"width"`
	Height     *int           `yaml:"height"`
	Algo       *string        `yaml:"algo"`
	Interval   *time.Duration `yaml:"interval"`
	FinalPause *time.Duration `yaml:"final_pause"`
	Seed       *int64         `yaml:"seed"`
	CellSize   *int           `yaml:"cell_size"`
}

func main() {
	cfg := initConfig()

	m, err := grid.New(cfg.width, cfg.height)
	if err != nil {
		log.Fatalf("bad dimensions %dx%d: %v", cfg.width, cfg.height, err)
	}
	// Opposite corners for path queries and PNG markers.
	m.Start, _ = m.At(0, 0)
	m.End, _ = m.At(cfg.width-1, cfg.height-1)

	rng := randx.New(cfg.seed)

	if cfg.interactive {
		runInteractive(cfg, m, rng)
	} else {
		runBatch(cfg, m, rng)
	}
}

func initConfig() config {
	cfg := config{
		width:      16,
		height:     12,
		algo:       algoWilson,
		interval:   40 * time.Millisecond,
		finalPause: 280 * time.Millisecond,
		seed:       0,
		cellSize:   mazepng.DefaultCellSize,
	}

	flaggy.SetName("mazeviz")
	flaggy.SetDescription("generate grid mazes and animate the carving")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.width, "x", "width", "Maze width in cells")
	flaggy.Int(&cfg.height, "y", "height", "Maze height in cells")
	flaggy.String(&cfg.algo, "e", "algo", "Carving algorithm [wilson|backtrack]")
	flaggy.Duration(&cfg.interval, "i", "interval", "Pause between animation steps, e.g. 40ms")
	flaggy.Duration(&cfg.finalPause, "f", "final-pause", "Pause after the settled frame")
	flaggy.Int64(&cfg.seed, "s", "seed", "Random seed (0 means the fixed default stream)")
	flaggy.Int(&cfg.cellSize, "c", "cell-size", "PNG cell size in pixels")
	flaggy.Bool(&cfg.interactive, "n", "interactive", "Animate the carve in a terminal UI")
	flaggy.Bool(&cfg.showSolution, "", "solution", "Highlight the corner-to-corner corridor")
	flaggy.String(&cfg.outFile, "o", "output", "Write the finished maze to this PNG file")
	flaggy.String(&cfg.presetPath, "p", "preset", "YAML preset file")
	flaggy.Parse()

	if cfg.presetPath != "" {
		if err := applyPreset(&cfg, cfg.presetPath); err != nil {
			log.Fatalf("preset %s: %v", cfg.presetPath, err)
		}
	}
	if cfg.algo != algoWilson && cfg.algo != algoBacktrack {
		flaggy.ShowHelpAndExit("unknown algorithm " + cfg.algo)
	}
	if cfg.interactive && cfg.algo != algoWilson {
		flaggy.ShowHelpAndExit("interactive animation requires the wilson algorithm")
	}

	return cfg
}

func applyPreset(cfg *config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var p preset
	if err = yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}

	if p.Width != nil {
		cfg.width = *p.Width
	}
	if p.Height != nil {
		cfg.height = *p.Height
	}
	if p.Algo != nil {
		cfg.algo = *p.Algo
	}
	if p.Interval != nil {
		cfg.interval = *p.Interval
	}
	if p.FinalPause != nil {
		cfg.finalPause = *p.FinalPause
	}
	if p.Seed != nil {
		cfg.seed = *p.Seed
	}
	if p.CellSize != nil {
		cfg.cellSize = *p.CellSize
	}

	return nil
}

// runInteractive animates a Wilson carve inside the gocui UI. The carve
// runs in its own goroutine; quitting the UI cancels it at the next
// suspension point.
func runInteractive(cfg config, m *grid.Maze, rng *rand.Rand) {
	ui, err := term.New(term.Config{
		Title:    fmt.Sprintf("mazeviz — Wilson's algorithm, %dx%d", cfg.width, cfg.height),
		Interval: cfg.interval,
	})
	if err != nil {
		log.Fatalf("terminal UI: %v", err)
	}
	defer ui.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ui.OnQuit(cancel)

	go func() {
		_, _ = wilson.Carve(m,
			wilson.WithContext(ctx),
			wilson.WithRand(rng),
			wilson.WithRenderer(ui),
			wilson.WithStepDelay(cfg.interval),
			wilson.WithFinalDelay(cfg.finalPause),
		)
	}()

	if err = ui.Run(); err != nil {
		log.Fatalf("terminal UI: %v", err)
	}
}

// runBatch carves at full speed, prints the maze, and optionally a
// solution overlay and a PNG file.
func runBatch(cfg config, m *grid.Maze, rng *rand.Rand) {
	start := time.Now()
	switch cfg.algo {
	case algoBacktrack:
		if err := backtrack.Carve(m, backtrack.WithRand(rng)); err != nil {
			log.Fatalf("carving: %v", err)
		}
		fmt.Printf("backtrack: %d edges in %v\n", m.EdgeCount(), time.Since(start).Round(time.Microsecond))
	case algoWilson:
		steps, err := wilson.Carve(m, wilson.WithRand(rng))
		if err != nil {
			log.Fatalf("carving: %v", err)
		}
		fmt.Printf("wilson: %d edges, %d walk steps in %v\n",
			m.EdgeCount(), steps, time.Since(start).Round(time.Microsecond))
	}

	var path []grid.CellID
	if cfg.showSolution {
		var err error
		if path, err = solve.ShortestPath(m, m.Start, m.End); err != nil {
			log.Fatalf("solving: %v", err)
		}
	}

	au := aurora.NewAurora(true)
	fmt.Print(ascii.Sprint(m, grid.NoCell, path, au))

	if cfg.outFile != "" {
		f, err := os.Create(cfg.outFile)
		if err != nil {
			log.Fatalf("creating %s: %v", cfg.outFile, err)
		}
		defer f.Close()
		if err = mazepng.Encode(f, m, path, cfg.cellSize); err != nil {
			log.Fatalf("writing %s: %v", cfg.outFile, err)
		}
		fmt.Printf("wrote %s\n", cfg.outFile)
	}
}
