package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/bootlog/config"
	"github.com/philipp01105/bootlog/events"
	"github.com/philipp01105/bootlog/formatter"
	"github.com/philipp01105/bootlog/handler"
	"github.com/philipp01105/bootlog/handler/consolehandler"
	"github.com/philipp01105/bootlog/logger"
)

// DefaultShutdownTimeout bounds the shutdown Wait performs.
const DefaultShutdownTimeout = 10 * time.Second

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Options controls Run.
type Options struct {
	// Config is passed to config.Load.
	Config config.Options
	// Output receives log lines (default: colorable stdout).
	Output io.Writer
	// Clock timestamps log entries (default: time.Now).
	Clock func() time.Time
	// OnReady listeners are subscribed before the ready event is emitted.
	OnReady []events.Listener
	// Registerer, when set, receives the log line collector.
	Registerer prometheus.Registerer
	// ShutdownTimeout bounds Wait's shutdown (default DefaultShutdownTimeout).
	ShutdownTimeout time.Duration
}

// App is a bootstrapped process.
type App struct {
	Config *config.Config
	Logger *logger.Logger
	Events *events.Notifier

	handler         *consolehandler.ConsoleHandler
	shutdownTimeout time.Duration

	mu    sync.Mutex
	hooks []func(context.Context) error

	shutdownOnce sync.Once
	shutdownErr  error
}

// Run bootstraps the application and emits events.Ready with the App as
// payload before returning it.
func Run(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = colorable.NewColorableStdout()
	}
	if cfg.ClearConsole {
		clearConsole(out)
	}

	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: out,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			Environment: cfg.Environment,
			Color:       cfg.Color,
		}),
	})
	if opts.Registerer != nil {
		if err := opts.Registerer.Register(handler.NewCollector(h)); err != nil {
			return nil, fmt.Errorf("bootstrap: registering log metrics: %w", err)
		}
	}

	log := logger.NewBuilder().
		WithHandler(h).
		WithClock(opts.Clock).
		Build()

	log.Info("Config loaded for environment %s", cfg.Env)
	log.Info("Bootstrapping the application...")

	app := &App{
		Config:          cfg,
		Logger:          log,
		handler:         h,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	if app.shutdownTimeout <= 0 {
		app.shutdownTimeout = DefaultShutdownTimeout
	}

	app.Events = events.New(
		events.WithErrorHandler(func(ev events.Event, err error) {
			log.Error("Listener for %s failed: %v", ev.Name, err)
		}),
		events.WithLeakHandler(func(event string, count int) {
			log.Warn("Possible listener leak: %d listeners for %s", count, event)
		}),
	).Freeze()

	for _, fn := range opts.OnReady {
		app.Events.Once(events.Ready, fn)
	}

	if err := ctx.Err(); err != nil {
		_ = log.Close()
		return nil, err
	}

	log.Info("Application bootstrapped successfully")
	app.Events.Emit(events.Ready, app)

	return app, nil
}

func clearConsole(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return
	}
	_, _ = io.WriteString(f, clearScreen)
}

// OnShutdown registers fn to run during Shutdown. Hooks run in reverse
// registration order.
func (a *App) OnShutdown(fn func(context.Context) error) {
	a.mu.Lock()
	a.hooks = append(a.hooks, fn)
	a.mu.Unlock()
}

// Shutdown runs the shutdown hooks and closes the logger. Only the first
// call does any work; later calls return the same result.
func (a *App) Shutdown(ctx context.Context) error {
	a.shutdownOnce.Do(func() {
		a.Logger.Info("Shutting down the application gracefully...")

		a.mu.Lock()
		hooks := slices.Clone(a.hooks)
		a.mu.Unlock()

		var errs []error
		for _, fn := range slices.Backward(hooks) {
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("bootstrap: shutdown interrupted: %w", err))
				break
			}
			if err := fn(ctx); err != nil {
				a.Logger.Error("Shutdown hook failed: %v", err)
				errs = append(errs, err)
			}
		}

		if err := a.Logger.Close(); err != nil {
			errs = append(errs, err)
		}
		a.shutdownErr = errors.Join(errs...)
	})
	return a.shutdownErr
}

// Wait blocks until the process receives SIGINT or SIGTERM or ctx is
// done, then shuts the application down.
func (a *App) Wait(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.shutdownTimeout)
	defer cancel()
	return a.Shutdown(shutdownCtx)
}

// Stats returns the log line counters of the application's console handler.
func (a *App) Stats() handler.Snapshot {
	return a.handler.Stats()
}
