package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config, unknown key or strategy)
	ExitDataError   = 3 // Data error (unknown citation type, missing required field)
)
