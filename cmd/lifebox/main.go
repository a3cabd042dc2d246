//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifebox/internal/app"
	"lifebox/internal/sandbox"
	"lifebox/internal/sims/life"
	"lifebox/internal/slots"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("[lifebox] ")
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	backend, err := app.OpenSlots(cfg)
	if err != nil {
		log.Fatalf("open slots: %v", err)
	}
	defer backend.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	size := cfg.GridSize()
	ctl := sandbox.New(life.New(size.W, size.H), slots.NewStore(), sandbox.Options{Speed: cfg.Speed, Seed: cfg.Seed})
	if err := ctl.Load(ctx, backend); err != nil {
		log.Printf("%v; starting with empty slots", err)
	} else {
		log.Printf("%s loaded successfully", cfg.SlotsPath)
	}

	game := app.New(ctl, cfg)
	go func() {
		<-ctx.Done()
		game.RequestQuit()
	}()

	ebiten.SetWindowTitle("lifebox: " + ctl.Board().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ViewportW, cfg.ViewportH)
	ebiten.SetFullscreen(cfg.Fullscreen)

	runErr := ebiten.RunGame(game)
	if err := ctl.Close(context.Background(), backend); err != nil {
		log.Printf("save slots: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
