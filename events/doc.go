// Package events provides the process notifier the bootstrap wires before
// handing control to application code.
//
// A Notifier delivers named events to listeners synchronously, in
// subscription order. Listener errors and panics never reach the emitter;
// they are handed to the notifier's error handler instead. Once frozen, a
// notifier's configuration (error handler, listener limit) can no longer
// change, while subscribing and emitting keep working.
package events
