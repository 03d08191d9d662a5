// Package logging provides the setupcfg.Logger implementations used by
// the generator: a stderr console logger for interactive runs and a
// silent one for tests.
package logging
