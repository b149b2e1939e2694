package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"tetrisim/client"
	"tetrisim/window"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[28;0H\n\r\033[?25h"
)

type options struct {
	window bool
	fps    int
	seed   uint64
	log    string
	debug  bool
}

func main() {
	o := &options{}
	flag.BoolVar(&o.window, "window", false, "play in a window instead of the terminal")
	flag.IntVar(&o.fps, "fps", 60, "frames per second of the terminal game")
	flag.Uint64Var(&o.seed, "seed", 0, "seed for the tetromino sequence, 0 picks a random one")
	flag.StringVar(&o.log, "log", "", "write JSON logs to this file")
	flag.BoolVar(&o.debug, "debug", false, "log debug messages")
	flag.Parse()

	logger, closeLog, err := newLogger(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(logger, o); err != nil {
		logger.Error("tetris stopped", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger, o *options) error {
	var r *rand.Rand
	if o.seed != 0 {
		r = rand.New(rand.NewPCG(o.seed, o.seed))
	}

	if o.window {
		return window.Run(window.New(&window.Options{Logger: logger, Rand: r}))
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal, try -window")
	}
	c, err := client.New(logger, &client.Options{FPS: o.fps, Rand: r})
	if err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}
	defer c.Close() //nolint: errcheck

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)
	c.Start()
	return nil
}

// newLogger logs to a file since stdout belongs to the game.
func newLogger(o *options) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	if o.log == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(o.log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil
}
