package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/nascentdigital/scene/log"
)

// Playwright is a running playwright driver.
type Playwright struct {
	ctx     context.Context
	pw      *playwright.Playwright
	runOpts *playwright.RunOptions
	out     *io.PipeWriter
	logger  *log.Logger
}

func runOptions(logger *log.Logger, out io.Writer) *playwright.RunOptions {
	return &playwright.RunOptions{
		Verbose:             logger.DebugMode(),
		SkipInstallBrowsers: true,
		Stdout:              out,
		Stderr:              out,
	}
}

// Install downloads the playwright driver and the browsers it drives.
func Install(logger *log.Logger) error {
	if logger == nil {
		logger = log.NullLogger()
	}
	out := logger.WriterLevel(logrus.InfoLevel)
	defer out.Close() //nolint:errcheck

	opts := runOptions(logger, out)
	opts.SkipInstallBrowsers = false
	opts.Verbose = true
	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("installing playwright: %w", err)
	}

	return nil
}

// Run starts the playwright driver. Browsers must already be installed, see
// Install. ctx carries the run id browser servers are registered under and
// bounds endpoint probing.
func Run(ctx context.Context, logger *log.Logger) (*Playwright, error) {
	if logger == nil {
		logger = log.NullLogger()
	}
	out := logger.WriterLevel(logrus.DebugLevel)

	opts := runOptions(logger, out)
	pw, err := playwright.Run(opts)
	if err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	logger.Debugf("Playwright:Run", "driver started")

	return &Playwright{
		ctx:     ctx,
		pw:      pw,
		runOpts: opts,
		out:     out,
		logger:  logger,
	}, nil
}

// BrowserType returns the engine called name.
func (p *Playwright) BrowserType(name string) (*BrowserType, error) {
	if _, err := ParseBrowserType(name); err != nil {
		return nil, err
	}

	var bt playwright.BrowserType
	switch name {
	case Firefox:
		bt = p.pw.Firefox
	case WebKit:
		bt = p.pw.WebKit
	default:
		bt = p.pw.Chromium
	}

	return &BrowserType{pw: p, bt: bt, name: name, logger: p.logger}, nil
}

// Stop shuts the driver down. Browsers launched through it are closed too.
func (p *Playwright) Stop() error {
	defer p.out.Close() //nolint:errcheck

	if err := p.pw.Stop(); err != nil {
		return fmt.Errorf("stopping playwright: %w", err)
	}
	p.logger.Debugf("Playwright:Stop", "driver stopped")

	return nil
}
