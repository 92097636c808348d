// Command mazerun generates random mazes and animates an A* search through
// them in the terminal.
//
// Settings come from ./.env (or the file named by -env), then MAZERUN_*
// environment variables, then flags, each overriding the previous:
//
//	mazerun -rows 15 -cols 30 -speed 2 -interval 20ms -loop
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazerun/internal/config"
	"github.com/katalvlaran/mazerun/internal/session"
	"github.com/katalvlaran/mazerun/render"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(log, os.Args[1:]); err != nil {
		log.WithError(err).Fatal("mazerun failed")
	}
}

func run(log *logrus.Logger, args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("mazerun", flag.ContinueOnError)
	envPath := fs.String("env", ".env", "dotenv file to read")
	legend := fs.Bool("legend", false, "print the glyph legend and exit")
	cfg.RegisterFlags(fs)
	// First pass only learns -env and -legend.
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *legend {
		fmt.Println(render.Legend)
		return nil
	}

	loaded, err := config.Load(*envPath)
	if err != nil {
		return err
	}
	cfg = loaded
	// Flags bind to cfg's fields, so a second pass lays them over the loaded values.
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.SetLevel(cfg.Level())
	log.WithFields(logrus.Fields{
		"rows":     cfg.Rows,
		"cols":     cfg.Cols,
		"seed":     cfg.Seed,
		"cap":      cfg.CorridorCap,
		"speed":    cfg.Speed,
		"interval": cfg.Interval,
		"loop":     cfg.Loop,
	}).Debug("configuration loaded")

	s, err := session.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := s.Run(ctx, os.Stdout); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
