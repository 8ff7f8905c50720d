// Package commands defines the deskcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none), tui       Run the interactive terminal keypad
//   - eval <expr...>    Evaluate an expression and print the formatted result
//   - press <keys...>   Feed keys through a fresh controller and print the display
//   - config init       Write the default configuration file
//   - config show       Print the effective configuration
//
// # Implementation
//
// The root command loads the configuration, installs the logger and builds
// the app before any subcommand runs, so handlers share one evaluator and
// formatter and only create their own controller.
package commands
