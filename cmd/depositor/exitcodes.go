package main

// Exit codes returned by the depositor CLI.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid options)
	ExitDataError   = 3 // Data error (malformed article input, markup parse failure)
)
