package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/philipp01105/bootlog/config"
	"github.com/philipp01105/bootlog/core"
	"github.com/philipp01105/bootlog/events"
)

var fixedTime = time.Date(2026, 10, 15, 7, 5, 0, 0, time.UTC)

func setup(t *testing.T, env string) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "NODE_ENV", "PORT", "HOST", "CLEAR_CONSOLE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_COLOR", "never")
	if env != "" {
		t.Setenv("APP_ENV", env)
	}
	t.Chdir(t.TempDir())
}

func run(t *testing.T, opts Options) (*App, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts.Output = &buf
	opts.Clock = func() time.Time { return fixedTime }
	app, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return app, &buf
}

func TestRun_Development(t *testing.T) {
	setup(t, "development")

	var ready []any
	app, buf := run(t, Options{
		OnReady: []events.Listener{func(ev events.Event) error {
			ready = append(ready, ev.Payload)
			return nil
		}},
	})

	want := strings.Join([]string{
		"[development] [15/10 @ 07:05] ℹ️ → Config loaded for environment development",
		"[development] [15/10 @ 07:05] ℹ️ → Bootstrapping the application...",
		"[development] [15/10 @ 07:05] ℹ️ → Application bootstrapped successfully",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("bootstrap output mismatch (-want +got):\n%s", diff)
	}

	if len(ready) != 1 || ready[0] != app {
		t.Errorf("ready payloads = %v, want the App once", ready)
	}
	if app.Config.Environment != core.Development {
		t.Errorf("Environment = %v", app.Config.Environment)
	}
	if !app.Events.Frozen() {
		t.Error("notifier is not frozen")
	}
}

func TestRun_ProductionSuppressesInfo(t *testing.T) {
	setup(t, "production")

	app, buf := run(t, Options{})
	if buf.Len() != 0 {
		t.Errorf("expected no info lines in production, got:\n%s", buf.String())
	}

	app.Logger.Warn("cache %s is cold", "users")
	if got := buf.String(); got != "[production] [15/10 @ 07:05] ⚠️ → cache users is cold\n" {
		t.Errorf("unexpected warn line: %q", got)
	}

	stats := app.Stats()
	if stats.SuppressedTotal != 3 || stats.ProcessedTotal != 1 {
		t.Errorf("stats = %+v, want 3 suppressed, 1 processed", stats)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	setup(t, "")
	t.Setenv("PORT", "99999")

	var buf bytes.Buffer
	_, err := Run(context.Background(), Options{Output: &buf})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Run() error = %v, want ErrInvalidConfig", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be logged before config loads, got %q", buf.String())
	}
}

func TestRun_CanceledContext(t *testing.T) {
	setup(t, "test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	called := false
	_, err := Run(ctx, Options{
		Output:  &buf,
		OnReady: []events.Listener{func(events.Event) error { called = true; return nil }},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("ready listener ran for a canceled bootstrap")
	}
}

func TestRun_ListenerFailureIsLogged(t *testing.T) {
	setup(t, "test")

	_, buf := run(t, Options{
		OnReady: []events.Listener{func(events.Event) error { return errors.New("db unreachable") }},
	})

	if !strings.Contains(buf.String(), "🚨 → Listener for app:ready failed: db unreachable") {
		t.Errorf("listener failure not logged:\n%s", buf.String())
	}
}

func TestRun_RegistersCollector(t *testing.T) {
	setup(t, "production")

	reg := prometheus.NewPedanticRegistry()
	app, _ := run(t, Options{Registerer: reg})
	app.Logger.Error("boom")

	count, err := testutil.GatherAndCount(reg, "bootlog_lines_written_total", "bootlog_lines_suppressed_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count == 0 {
		t.Error("expected log line metrics to be registered")
	}
}

func TestApp_Shutdown(t *testing.T) {
	setup(t, "development")
	app, buf := run(t, Options{})
	buf.Reset()

	var order []string
	app.OnShutdown(func(context.Context) error { order = append(order, "db"); return nil })
	app.OnShutdown(func(context.Context) error { order = append(order, "http"); return errors.New("listener busy") })

	err := app.Shutdown(context.Background())
	if err == nil || err.Error() != "listener busy" {
		t.Errorf("Shutdown() error = %v, want listener busy", err)
	}
	if diff := cmp.Diff([]string{"http", "db"}, order); diff != "" {
		t.Errorf("hook order mismatch (-want +got):\n%s", diff)
	}

	out := buf.String()
	if !strings.Contains(out, "Shutting down the application gracefully...") {
		t.Errorf("missing shutdown line:\n%s", out)
	}
	if !strings.Contains(out, "Shutdown hook failed: listener busy") {
		t.Errorf("missing hook failure line:\n%s", out)
	}

	// Second call is a no-op returning the same result
	if again := app.Shutdown(context.Background()); again != err {
		t.Errorf("second Shutdown() = %v, want %v", again, err)
	}
	if len(order) != 2 {
		t.Errorf("hooks ran again: %v", order)
	}

	// The logger is closed after shutdown
	before := buf.Len()
	app.Logger.Error("after shutdown")
	if buf.Len() != before {
		t.Error("logger still writing after Shutdown")
	}
}

func TestApp_WaitReturnsOnContextDone(t *testing.T) {
	setup(t, "test")
	app, buf := run(t, Options{ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Wait(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Wait() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() did not return after cancel")
	}
	if !strings.Contains(buf.String(), "Shutting down the application gracefully...") {
		t.Errorf("Wait did not shut down:\n%s", buf.String())
	}
}
