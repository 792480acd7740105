// Command tempo plays an audio file or a URL with an optional tempo
// multiplier, trim window and loop mode, with keyboard transport controls.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tempo/internal/audio"
	"github.com/llehouerou/tempo/internal/config"
	"github.com/llehouerou/tempo/internal/errmsg"
	"github.com/llehouerou/tempo/internal/history"
	"github.com/llehouerou/tempo/internal/source"
	"github.com/llehouerou/tempo/internal/tags"
	"github.com/llehouerou/tempo/internal/transform"
	"github.com/llehouerou/tempo/internal/transport"
	"github.com/llehouerou/tempo/internal/ui"
)

type options struct {
	tempo float64
	start float64
	end   float64
	loop  bool
	save  string
}

func main() {
	var (
		opts        options
		showHistory bool
	)

	flag.Float64Var(&opts.tempo, "t", 1.0, "tempo multiplier")
	flag.Float64Var(&opts.tempo, "tempo", 1.0, "tempo multiplier")
	flag.Float64Var(&opts.start, "s", 0, "track start time in seconds")
	flag.Float64Var(&opts.start, "start", 0, "track start time in seconds")
	flag.Float64Var(&opts.end, "e", 0, "track end time in seconds")
	flag.Float64Var(&opts.end, "end", 0, "track end time in seconds")
	flag.BoolVar(&opts.loop, "l", false, "loop the track")
	flag.BoolVar(&opts.loop, "loop", false, "loop the track")
	flag.StringVar(&opts.save, "save", "", "save the downloaded audio to the given path")
	flag.BoolVar(&showHistory, "history", false, "list recently played tracks and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: tempo <file_or_url> [options]\n\nPlay an audio file or audio from a URL with a given tempo multiplier.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showHistory {
		if err := printHistory(); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpHistoryList, err))
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if opts.tempo <= 0 {
		fmt.Fprintln(os.Stderr, "ERROR: tempo must be positive")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), opts); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
		os.Exit(1)
	}
}

func run(identifier string, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoadConfig, err))
	}

	// Interrupts before the interactive loop starts (e.g. during a slow
	// download) cancel the external commands; inside the loop bubbletea
	// turns them into a graceful quit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	workDir, err := os.MkdirTemp("", "tempo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	resolver := &source.Resolver{Format: cfg.AudioFormat}
	if source.IsRemote(identifier) {
		fmt.Println("Downloading audio...")
	}
	srcPath, err := resolver.Resolve(ctx, identifier, workDir)
	if err != nil {
		return err
	}

	// Copy the downloaded file if the user wants to keep it. Failures
	// here leave the session playable, so they are ignored.
	if opts.save != "" && source.IsRemote(identifier) {
		_ = source.Persist(srcPath, opts.save)
	}

	fmt.Println("Loading...")
	playbackPath, duration, err := transform.Apply(ctx, srcPath, workDir, cfg.AudioFormat, transform.Options{
		Start: opts.start,
		End:   opts.end,
		Tempo: opts.tempo,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpTransformAudio, err))
	}

	engine := audio.NewEngine()
	if err := engine.Load(playbackPath); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLoadAudio, playbackPath, err))
	}
	defer engine.Unload()

	machine := transport.NewMachine(engine, duration, opts.tempo, opts.loop)
	if err := machine.Start(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpStartPlayback, err))
	}

	info := tags.Read(srcPath)
	recordPlay(identifier, info.Title, duration, opts.tempo)

	p := tea.NewProgram(ui.New(machine, cfg, info.Display()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// recordPlay appends the session to the play history. Best effort: a
// missing or broken database never blocks playback.
func recordPlay(identifier, title string, duration, tempo float64) {
	store, err := history.Open(history.DefaultPath())
	if err != nil {
		return
	}
	defer store.Close()

	_ = store.Record(history.Entry{
		Identifier: identifier,
		Title:      title,
		Duration:   duration,
		Tempo:      tempo,
	})
}

func printHistory() error {
	store, err := history.Open(history.DefaultPath())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(20)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No plays recorded yet.")
		return nil
	}

	for _, e := range entries {
		length := time.Duration(e.Duration * float64(time.Second)).Round(time.Second)
		fmt.Printf("%-20s  %s (%s", humanize.Time(e.PlayedAt), e.Title, length)
		if e.Tempo != 1 {
			fmt.Printf(", %.2fx", e.Tempo)
		}
		fmt.Println(")")
	}
	return nil
}
