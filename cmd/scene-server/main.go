// Command scene-server launches a browser server, publishes its endpoint
// for test binaries and tears it down when they are done.
//
//	scene-server [flags] [-- go test ./...]
//
// With a command after "--" the command is run with SCENE_ENDPOINT_FILE
// exported and scene-server exits with its status. Without one it serves
// until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/nascentdigital/scene/browserprocess"
	"github.com/nascentdigital/scene/engine"
	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/log"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	cfg, err := parseFlags(args, env.Lookup)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		failure.Fprintf(os.Stderr, "scene-server: %v\n", err)
		return 2
	}

	logger, err := log.NewFromEnv(env.Lookup)
	if err != nil {
		failure.Fprintf(os.Stderr, "scene-server: %v\n", err)
		return 1
	}

	if cfg.install {
		if err := engine.Install(logger); err != nil {
			failure.Fprintf(os.Stderr, "scene-server: %v\n", err)
			return 1
		}
	}

	ctx, cancel := context.WithCancel(browserprocess.WithRunID(context.Background(), uuid.NewString()))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Infof("scene-server", "received %s, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	pw, err := engine.Run(ctx, logger)
	if err != nil {
		failure.Fprintf(os.Stderr, "scene-server: %v\n", err)
		return 1
	}
	defer pw.Stop() //nolint:errcheck

	bt, err := pw.BrowserType(cfg.browser)
	if err != nil {
		failure.Fprintf(os.Stderr, "scene-server: %v\n", err)
		return 1
	}

	code, err := newServer(cfg, bt, logger, os.Stdout).run(ctx)
	if err != nil {
		failure.Fprintf(os.Stderr, "scene-server: %v\n", err)
		browserprocess.ForceProcessShutdown(ctx)
		if code == 0 {
			code = 1
		}
	}

	return code
}

var (
	success = color.New(color.FgGreen)  //nolint:gochecknoglobals
	failure = color.New(color.FgRed)    //nolint:gochecknoglobals
	notice  = color.New(color.FgYellow) //nolint:gochecknoglobals
)
