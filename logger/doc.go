// Package logger is the public API of bootlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction; the handler and clock are
// set once via the Builder and never modified. This makes Logger safe
// for concurrent use without any locking on the read path.
//
// There are five entry points, one per level, each taking a printf
// template and its arguments:
//
//	log.Error("payment %s failed: %v", id, err)
//	log.Warn("retrying in %s", delay)
//	log.Info("User %s logged in", name)
//	log.Debug("cache hit ratio %.2f", ratio)
//	log.Log("Service has been finished successfully")
//
// Which entries are printed is decided by the handler's formatter from
// the environment it was built with, not by a level threshold on the
// Logger. Arguments are only substituted for entries that survive.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(h).
//	    WithCoarseClock(true).
//	    Build()
//
// The package also keeps a default Logger (development, stdout) behind
// the package-level functions. Applications started through the
// bootstrap package get an explicit Logger instead and should prefer it.
package logger
