// Package main implements an interactive terminal view over the task API.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/taskboard/internal/client"
	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (default: ./config.yaml if present)")
	apiURL := flag.String("api", "", "Task API base URL (overrides ui.api_url)")
	flag.Parse()

	if err := run(context.Background(), *configPath, *apiURL, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, apiURL string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if apiURL == "" {
		apiURL = cfg.UI.APIURL
	}

	// Diagnostics go to errOut so they do not interleave with the screen.
	log, err := logger.SetupWithWriter(cfg.Server, errOut)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	api, err := client.New(apiURL)
	if err != nil {
		return err
	}

	ctrl := ui.NewController(api, log)
	ctrl.Mount(ctx)

	s := &session{ctrl: ctrl, out: out}
	ui.Render(out, ctrl.State())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		if err := s.exec(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(out, "%v (type 'help')\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("failed to read input", slog.String("error", err.Error()))
		return err
	}
	return nil
}
