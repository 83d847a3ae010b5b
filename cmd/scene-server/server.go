package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/config"
	"github.com/nascentdigital/scene/env"
	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/storage"
)

// server is one global setup and teardown cycle.
type server struct {
	cfg       cliConfig
	bt        api.BrowserType
	persister storage.FilePersister
	logger    *log.Logger
	out       io.Writer

	// runCommand runs the child command; replaced in tests.
	runCommand func(ctx context.Context, command []string, environ []string) (int, error)
}

func newServer(cfg cliConfig, bt api.BrowserType, logger *log.Logger, out io.Writer) *server {
	return &server{
		cfg:        cfg,
		bt:         bt,
		persister:  &storage.LocalFilePersister{},
		logger:     logger,
		out:        out,
		runCommand: runCommand,
	}
}

// loadConfig loads the configuration and returns the absolute path of the
// file it came from, or "" when none was found.
func (s *server) loadConfig() (*config.Configuration, string, error) {
	path := s.cfg.configPath
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("resolving working directory: %w", err)
		}
		p, ok := config.Find(dir, env.Lookup)
		if !ok {
			return &config.Configuration{}, "", nil
		}
		path = p
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolving configuration path %q: %w", path, err)
	}
	cfg, err := config.Load(abs)
	if err != nil {
		return nil, "", err
	}

	return cfg, abs, nil
}

// run launches the server, publishes its endpoint and waits for the child
// command or for ctx to be cancelled. It returns the exit code to use.
func (s *server) run(ctx context.Context) (code int, err error) {
	cfg, configPath, err := s.loadConfig()
	if err != nil {
		return 1, err
	}

	bs, err := s.bt.LaunchServer(cfg.LaunchOptions())
	if err != nil {
		return 1, err
	}
	defer func() {
		err = errors.Join(err, s.teardown(bs))
	}()

	if err := storage.WriteEndpoint(ctx, s.persister, s.cfg.endpointFile, bs.WSEndpoint()); err != nil {
		return 1, err
	}
	success.Fprintf(s.out, "scene-server: %s listening on %s\n", s.bt.Name(), bs.WSEndpoint())
	fmt.Fprintf(s.out, "scene-server: endpoint written to %s\n", s.cfg.endpointFile)

	if len(s.cfg.command) == 0 {
		notice.Fprintln(s.out, "scene-server: press Ctrl+C to stop")
		<-ctx.Done()
		return 0, nil
	}

	// test binaries run in their package directory
	endpointFile, err := filepath.Abs(s.cfg.endpointFile)
	if err != nil {
		return 1, fmt.Errorf("resolving endpoint file %q: %w", s.cfg.endpointFile, err)
	}
	environ := append(os.Environ(), env.EndpointFile+"="+endpointFile)
	if configPath != "" {
		environ = append(environ, env.ConfigPath+"="+configPath)
	}
	code, err = s.runCommand(ctx, s.cfg.command, environ)
	if err != nil {
		return code, fmt.Errorf("running %q: %w", s.cfg.command[0], err)
	}
	if code != 0 {
		failure.Fprintf(s.out, "scene-server: %s exited with status %d\n", s.cfg.command[0], code)
	}

	return code, nil
}

func (s *server) teardown(bs api.BrowserServer) error {
	var errs []error
	if err := bs.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing browser server: %w", err))
	}
	if err := storage.RemoveEndpoint(s.cfg.endpointFile); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		s.logger.Debugf("scene-server", "browser server pid:%d closed", bs.Pid())
	}
	return errors.Join(errs...)
}

// runCommand runs command with environ and the standard streams of this
// process, and returns its exit status.
func runCommand(ctx context.Context, command []string, environ []string) (int, error) {
	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}
