package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/smasonuk/polyscene/browser"
)

func main() {
	opts, err := browser.ParseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	logger, err := opts.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger.Info("starting browser", "width", opts.Width, "height", opts.Height, "seed", opts.Seed)

	game, err := NewGame(opts, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("polyscene browser")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetVsyncEnabled(opts.VSync)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	logger.Info("browser closed")
}
