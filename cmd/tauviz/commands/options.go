package commands

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/quantalab/tauviz/config"
	"github.com/quantalab/tauviz/render"
	"github.com/quantalab/tauviz/spectra"
)

// renderOptions builds figure options from the loaded configuration.
func renderOptions() (render.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return render.Options{}, err
	}

	return render.Options{
		DPI:           cfg.Plot.DPI,
		ScatterSize:   cfg.Plot.ScatterSize,
		PathWidth:     cfg.Plot.PathWidth,
		PathHeight:    cfg.Plot.PathHeight,
		BandWidth:     cfg.Plot.BandWidth,
		BandHeight:    cfg.Plot.BandHeight,
		Magnification: cfg.Plot.Magnification,
	}, nil
}

// calcIndexFromArgs resolves the optional positional CALC argument against
// the --calc flag; the positional argument wins when both are given.
func calcIndexFromArgs(args []string, pos, flagValue int) (int, error) {
	if len(args) > pos {
		return spectra.ParseCalcIndex(args[pos])
	}
	return flagValue, nil
}

// watchAndBlock re-renders on document changes until interrupted.
func watchAndBlock(renderFn spectra.ChangeCallback, paths ...string) error {
	watcher, err := spectra.NewWatcher(paths...)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.OnChange(renderFn)
	watcher.Start()

	pterm.Info.Printf("Watching %s for changes (Ctrl-C to stop)", strings.Join(paths, ", "))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
