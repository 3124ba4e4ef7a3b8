// Package bootstrap prepares a service process: it loads configuration,
// builds the logger for the configured environment, wires the event
// notifier and installs graceful shutdown, then signals readiness.
//
//	app, err := bootstrap.Run(ctx, bootstrap.Options{})
//	if err != nil {
//	    return err
//	}
//	app.Logger.Info("listening on %s", app.Config.Address())
//	return app.Wait(ctx)
package bootstrap
