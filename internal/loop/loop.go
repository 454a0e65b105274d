package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/spaaace/internal/asset"
	"github.com/tomz197/spaaace/internal/config"
	"github.com/tomz197/spaaace/internal/draw"
	"github.com/tomz197/spaaace/internal/input"
	"github.com/tomz197/spaaace/internal/object"
)

// Options configures a terminal game.
type Options struct {
	Settings config.Settings   // Zero value uses config.Default()
	Sheet    *asset.Sheet      // Built from Settings when nil
	TermSize draw.TermSizeFunc // Defaults to the size of os.Stdout
	Rand     *rand.Rand        // Randomly seeded when nil
	Logger   *zap.Logger
}

// Run plays one game on a terminal: keys are read from r and frames written
// to w. It blocks until the player quits, r is exhausted or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	settings := opts.Settings
	if settings.TickRate == 0 {
		settings = config.Default()
	}
	sheet := opts.Sheet
	if sheet == nil {
		var err error
		if sheet, err = settings.Sheet(); err != nil {
			return err
		}
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	arena := func() object.Arena {
		cols, rows, err := termSize()
		if err != nil {
			cols, rows = 0, 0
		}
		return FitArena(settings.Arena.Width, settings.Arena.Height, cols, rows)
	}

	world := NewWorld(WorldOptions{
		Arena:          arena(),
		Metrics:        sheet,
		SpawnInterval:  settings.SpawnInterval,
		OffscreenSpace: settings.OffscreenSpace,
		Rand:           opts.Rand,
		Logger:         logger,
	})

	stream := input.StartStream(r)
	session := NewSession(world, SessionOptions{
		Keys: func(now time.Time) input.Set {
			return input.ReadInput(stream, now)
		},
		Arena:    arena,
		TickTime: settings.TickTime(),
		Logger:   logger,
	})

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	logger.Info("game started", zap.Float64("arena_width", world.Arena().Width), zap.Float64("arena_height", world.Arena().Height))
	err := session.Run(ctx, draw.NewScene(w, sheet, termSize))
	logger.Info("game ended", zap.Float64("time", world.Time()), zap.Error(err))

	draw.ClearScreen(w)
	return err
}

// FitArena keeps the arena width and derives the height from the terminal
// aspect ratio (half-block pixels are roughly square). Without a usable
// terminal size the configured height is used.
func FitArena(width, height float64, cols, rows int) object.Arena {
	if cols <= 0 || rows <= 0 {
		return object.Arena{Width: width, Height: height}
	}
	return object.Arena{
		Width:  width,
		Height: width * float64(rows*2) / float64(cols),
	}
}
