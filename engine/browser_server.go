/*
 *
 * scene - lifecycle-bound browser handles for Go tests
 * Copyright (C) 2021 Nascent Digital
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package engine

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/browserprocess"
	"github.com/nascentdigital/scene/log"
	"github.com/nascentdigital/scene/sceneerror"
	"github.com/nascentdigital/scene/storage"
)

const (
	// DefaultServerStartTimeout bounds how long LaunchServer waits for the
	// driver to print the endpoint when the launch options carry no timeout.
	DefaultServerStartTimeout = 30 * time.Second

	serverCloseTimeout = 5 * time.Second
	serverConfigFile   = "launch-options.json"
)

// Ensure BrowserServer implements the api.BrowserServer interface.
var _ api.BrowserServer = &BrowserServer{}

// BrowserServer is a browser started by the playwright driver's
// launch-server command. Other processes connect to it through its
// websocket endpoint.
type BrowserServer struct {
	ctx        context.Context
	cmd        *exec.Cmd
	wsEndpoint string
	configDir  string

	// closed when stdout reaches EOF.
	scanDone chan struct{}
	// closed when the driver process exits.
	processDone chan struct{}

	logger *log.Logger
}

// LaunchServer starts a browser server and waits until its endpoint accepts
// connections.
func (t *BrowserType) LaunchServer(opts *api.LaunchOptions) (api.BrowserServer, error) {
	if opts == nil {
		opts = api.NewLaunchOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", sceneerror.ErrConfiguration, err)
	}

	configDir, err := os.MkdirTemp("", "scene-server-*")
	if err != nil {
		return nil, fmt.Errorf("creating server config directory: %w", err)
	}
	s, err := t.launchServer(opts, configDir)
	if err != nil {
		_ = os.RemoveAll(configDir)
		return nil, err
	}

	return s, nil
}

func (t *BrowserType) launchServer(opts *api.LaunchOptions, configDir string) (*BrowserServer, error) {
	ctx := t.pw.ctx

	data, err := newServerConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding launch options: %w", err)
	}
	configPath := filepath.Join(configDir, serverConfigFile)
	var persister storage.LocalFilePersister
	if err := persister.Persist(ctx, configPath, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("writing launch options: %w", err)
	}

	driver, err := playwright.NewDriver(t.pw.runOpts)
	if err != nil {
		return nil, fmt.Errorf("locating playwright driver: %w", err)
	}
	cmd := driver.Command("launch-server", "--browser", t.name, "--config", configPath)
	killAfterParent(cmd)
	cmd.Stdout = nil
	cmd.Stderr = t.pw.out

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("piping server stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s server: %w", t.name, err)
	}

	s := &BrowserServer{
		ctx:         ctx,
		cmd:         cmd,
		configDir:   configDir,
		scanDone:    make(chan struct{}),
		processDone: make(chan struct{}),
		logger:      t.logger,
	}
	endpoints := make(chan string, 1)
	go s.scan(stdout, endpoints)
	go s.wait()

	timeout := opts.TimeoutDuration()
	if timeout == 0 {
		timeout = DefaultServerStartTimeout
	}
	select {
	case s.wsEndpoint = <-endpoints:
	case <-s.processDone:
		return nil, fmt.Errorf("%s server exited before printing its endpoint", t.name)
	case <-time.After(timeout):
		_ = s.kill()
		return nil, fmt.Errorf("%s server did not print its endpoint in %s", t.name, timeout)
	case <-ctx.Done():
		_ = s.kill()
		return nil, ctx.Err()
	}

	if err := probeEndpoint(ctx, s.wsEndpoint, probeRetries); err != nil {
		_ = s.kill()
		return nil, fmt.Errorf("probing %s server: %w", t.name, err)
	}
	browserprocess.Register(ctx, t.logger, s.Pid())
	t.logger.Infof("BrowserServer:launch", "%s server pid:%d listening on %s", t.name, s.Pid(), s.wsEndpoint)

	return s, nil
}

// scan sends the first websocket endpoint printed by the driver on
// endpoints and logs every other line.
func (s *BrowserServer) scan(r io.Reader, endpoints chan<- string) {
	defer close(s.scanDone)

	found := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !found && (strings.HasPrefix(line, "ws://") || strings.HasPrefix(line, "wss://")) {
			found = true
			endpoints <- line
			continue
		}
		s.logger.Debugf("BrowserServer:stdout", "%s", line)
	}
}

// wait reaps the driver once its stdout is drained; Wait closes the pipe.
func (s *BrowserServer) wait() {
	defer close(s.processDone)

	<-s.scanDone
	if err := s.cmd.Wait(); err != nil {
		s.logger.Debugf("BrowserServer:wait", "process with PID %d ended: %v", s.cmd.Process.Pid, err)
	}
}

func (s *BrowserServer) kill() error {
	err := s.cmd.Process.Kill()
	<-s.processDone
	return err
}

// Close stops the server, killing it when it does not exit in time, and
// removes its launch configuration.
func (s *BrowserServer) Close() error {
	defer browserprocess.Unregister(s.ctx, s.logger, s.Pid())
	defer os.RemoveAll(s.configDir) //nolint:errcheck

	s.logger.Debugf("BrowserServer:Close", "pid:%d", s.Pid())
	if err := s.cmd.Process.Signal(os.Interrupt); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return s.kill()
	}

	select {
	case <-s.processDone:
		return nil
	case <-time.After(serverCloseTimeout):
		s.logger.Warnf("BrowserServer:Close", "pid:%d did not exit in %s, killing it", s.Pid(), serverCloseTimeout)
		return s.kill()
	}
}

// Pid returns the driver process id.
func (s *BrowserServer) Pid() int {
	return s.cmd.Process.Pid
}

// WSEndpoint returns the endpoint Connect accepts.
func (s *BrowserServer) WSEndpoint() string {
	return s.wsEndpoint
}
