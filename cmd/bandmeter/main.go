// Command bandmeter shows a live six-band level meter in the terminal.
//
// Usage:
//
//	bandmeter [flags]
//
// Audio comes from a WAV file (-wav) or, by default, from a built-in sine
// generator. Press Enter or Ctrl-C to quit.
//
// Examples:
//
//	bandmeter
//	bandmeter -freq 3000
//	bandmeter -wav music.wav -loop
//	bandmeter -config session.json -db
//	bandmeter -write-config session.json
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/cwbudde/algo-bandmeter/analysis"
	"github.com/cwbudde/algo-bandmeter/capture"
	"github.com/cwbudde/algo-bandmeter/config"
	"github.com/cwbudde/algo-bandmeter/diag"
	"github.com/cwbudde/algo-bandmeter/dsp/core"
	"github.com/cwbudde/algo-bandmeter/dsp/window"
	"github.com/cwbudde/algo-bandmeter/meter"
	"github.com/cwbudde/algo-bandmeter/source"
)

// Version is set at build time.
var Version = "dev"

const clearScreen = "\033[H\033[2J"

type options struct {
	configPath  string
	writeConfig string
	wavPath     string
	loop        bool
	freq        float64
	amplitude   float64
	channels    int
	blockSize   int
	frames      int
	showDB      bool
	verbose     bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "session config file (JSON)")
	flag.StringVar(&o.writeConfig, "write-config", "", "write the effective session config to this file and exit")
	flag.StringVar(&o.wavPath, "wav", "", "play a WAV file instead of the sine generator")
	flag.BoolVar(&o.loop, "loop", false, "loop the WAV file")
	flag.Float64Var(&o.freq, "freq", 1000, "sine generator frequency in Hz")
	flag.Float64Var(&o.amplitude, "amp", 0.5, "sine generator amplitude (0..1)")
	flag.IntVar(&o.channels, "channels", 2, "sine generator channel count")
	flag.IntVar(&o.blockSize, "block", source.DefaultBlockSize, "frames per pushed block")
	flag.IntVar(&o.frames, "frames", 0, "stop after this many frames (0 = run until quit)")
	flag.BoolVar(&o.showDB, "db", false, "print the dB level under each bar")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	list := flag.Bool("list-windows", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bandmeter [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Shows per-band audio levels as segment bars.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(window.Names(), "\n"))
		return
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(o, logger); err != nil {
		logger.Error("bandmeter failed", "error", err)
		os.Exit(1)
	}
}

func loadSession(o options) (config.Session, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

// producer is an audio source feeding the capture queue.
type producer interface {
	Run(ctx context.Context, p source.Pusher) error
}

func openSource(o options, session *config.Session) (producer, error) {
	if o.wavPath != "" {
		w, err := source.OpenWAV(o.wavPath)
		if err != nil {
			return nil, err
		}
		w.Loop = o.loop
		w.BlockSize = o.blockSize
		session.SampleRate = w.SampleRate()

		slog.Info("playing WAV file", "path", o.wavPath, "sample_rate", w.SampleRate(), "channels", w.Channels(), "frames", w.Frames())
		return w, nil
	}

	slog.Info("using sine generator", "freq_hz", o.freq, "amplitude", o.amplitude)
	return source.NewSine(o.freq, o.amplitude,
		core.WithSampleRate(session.SampleRate),
		core.WithChannels(o.channels),
		core.WithBlockSize(o.blockSize),
	), nil
}

func run(o options, logger *slog.Logger) error {
	session, err := loadSession(o)
	if err != nil {
		return err
	}

	if o.writeConfig != "" {
		if err := session.Save(o.writeConfig); err != nil {
			return err
		}
		logger.Info("config written", "path", o.writeConfig)
		return nil
	}

	logger.Info("starting", "app", "bandmeter", "version", Version)

	src, err := openSource(o, &session)
	if err != nil {
		return err
	}

	if err := session.Validate(); err != nil {
		return err
	}

	bands, err := session.AnalysisBands()
	if err != nil {
		return err
	}

	mapper, err := session.Mapper()
	if err != nil {
		return err
	}

	counter := &diag.Counter{}
	sink := diag.Multi(counter, diag.NewLogger(logger))

	queue, err := capture.NewQueue(session.QueueCapacity, capture.WithSink(sink))
	if err != nil {
		return err
	}

	analyzer, err := analysis.NewAnalyzer(session.SampleRate, session.WindowLength, bands,
		append(session.AnalyzerOptions(), analysis.WithSink(sink))...)
	if err != nil {
		return err
	}

	pipeline, err := meter.NewPipeline(queue, analyzer, mapper, session.WindowLength, meter.WithSink(sink))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		go waitForEnter(pipeline)
	}

	go func() {
		if err := src.Run(ctx, queue); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("audio source stopped", "error", err)
		}
		// End of a non-looping file: let the last blocks render, then quit.
		if ctx.Err() == nil {
			pipeline.Stop()
		}
	}()

	interactive := isatty.IsTerminal(os.Stdout.Fd())
	r := newRenderer(bands, meter.DefaultSegmentThresholds(), o.showDB)

	frames := 0
	err = pipeline.Run(ctx, session.PollInterval(), func(f meter.Frame) {
		if interactive {
			fmt.Print(clearScreen)
		}
		fmt.Println(r.Render(f))

		frames++
		if o.frames > 0 && frames >= o.frames {
			pipeline.Stop()
		}
	})

	c := counter.Snapshot()
	logger.Info("stopped",
		"frames", frames,
		"overflows", c.Overflows,
		"empty_drains", c.EmptyDrains,
		"silent_windows", c.SilentWindows,
	)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// waitForEnter stops the pipeline when the user presses Enter.
func waitForEnter(p *meter.Pipeline) {
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	p.Stop()
}
