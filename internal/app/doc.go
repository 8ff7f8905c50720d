// Package app wires application dependencies for the front ends.
//
// It builds the formatter, the evaluator service and controller factories
// from Config, exposing them via the App struct for commands, the keypad and
// the HTTP service to use.
package app
