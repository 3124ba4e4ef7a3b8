package bootstrap_test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/bootlog/bootstrap"
	"github.com/philipp01105/bootlog/events"
)

func ExampleRun() {
	os.Setenv("APP_ENV", "test")
	os.Setenv("LOG_COLOR", "never")
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("LOG_COLOR")

	app, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Output: os.Stdout,
		Clock:  func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) },
		OnReady: []events.Listener{func(ev events.Event) error {
			fmt.Println("ready:", ev.Name)
			return nil
		}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = app.Shutdown(context.Background())
	// Output:
	// [test] [02/03 @ 08:00] ℹ️ → Config loaded for environment test
	// [test] [02/03 @ 08:00] ℹ️ → Bootstrapping the application...
	// [test] [02/03 @ 08:00] ℹ️ → Application bootstrapped successfully
	// ready: app:ready
	// [test] [02/03 @ 08:00] ℹ️ → Shutting down the application gracefully...
}
