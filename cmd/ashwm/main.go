package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"log/syslog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/ashwm/ashwm/internal/config"
	"github.com/ashwm/ashwm/internal/dump"
	"github.com/ashwm/ashwm/internal/wm"
	"github.com/ashwm/ashwm/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWM())
	case "dump":
		os.Exit(runDump(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ashwm <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                  Start the window manager (foreground)")
	fmt.Fprintln(w, "  dump                 Print the dump file last written by a running instance")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate      Validate configuration")
	fmt.Fprintln(w, "  config print         Print configuration")
	fmt.Fprintln(w, "  config explain       Explain which source set each config field")
}

// runWM loads config, connects to the display, and blocks running the
// event loop until a termination signal; SIGUSR1 schedules a state dump
// without stopping the loop. Grounded on 1broseidon/termtile's cmd/termtile/main.go runDaemon
// wiring and its signal-handling goroutine.
func runWM() int {
	res, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(logWriter(cfg.LogFile), &slog.HandlerOptions{
		Level: logLevel(cfg.LogMask),
	}))
	logger.Info("configuration loaded", "num_desktops", cfg.NumDesktops, "border_width", cfg.BorderWidth)

	conn, err := x11.Connect(logger)
	if err != nil {
		if errors.Is(err, x11.ErrNoRandR) {
			fmt.Fprintf(os.Stderr, "failed to connect to the display: %v\n", err)
			return 1
		}
		// ErrAnotherWM and every other Connect failure (NewConn
		// failure, root redirect AccessError) mean the display could
		// not be opened for this WM to run on, per spec §6's exit
		// code 2.
		fmt.Fprintf(os.Stderr, "failed to connect to the display: %v\n", err)
		return 2
	}
	defer conn.Close()
	logger.Info("acquired substructure redirection on the root window")

	core, err := wm.New(conn, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize window manager state: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGUSR1:
				logger.Info("received SIGUSR1, scheduling a state dump")
				core.RequestDump()
			case os.Interrupt, syscall.SIGTERM:
				logger.Info("shutting down")
				cancel()
				return
			}
		}
	}()

	if err := core.Run(ctx); err != nil {
		logger.Error("event loop exited with error", "err", err)
		return 1
	}
	return 0
}

func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	if path == "syslog" {
		w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, "ashwm")
		if err != nil {
			log.Printf("failed to open syslog, falling back to stderr: %v", err)
			return os.Stderr
		}
		return w
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("failed to open log file %s, falling back to stderr: %v", path, err)
		return os.Stderr
	}
	return f
}

func logLevel(mask string) slog.Level {
	switch mask {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runDump prints the dump file that a running instance last wrote on
// SIGUSR1 (the --path flag, else the configured dump_file, else the
// runtime-directory default). It does not connect to the display or
// build any model state itself.
func runDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Dump file path override")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	res, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	dumpPath := *path
	if dumpPath == "" {
		dumpPath = res.Config.DumpFile
	}

	data, err := os.ReadFile(dump.Path(dumpPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, "no dump available:", err)
		return 1
	}
	fmt.Print(string(data))
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  ashwm config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  ashwm config print [--path PATH] [--defaults]")
		fmt.Fprintln(os.Stderr, "  ashwm config explain [--path PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/ashwm/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		res, err := loadConfigArgs(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := config.Validate(res.Config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/ashwm/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.Defaults
		if !*printDefaults {
			res, err := loadConfigArgs(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	case "explain":
		fs := flag.NewFlagSet("explain", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/ashwm/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		res, err := loadConfigArgs(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(config.Explain(res))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func loadConfigArgs(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}
