// Package trace renders cpu execution events for people.
//
// Writer prints the console narration of a run, Log sends one line per event
// to a log.Logger, and Multi fans events out to several tracers.
package trace
