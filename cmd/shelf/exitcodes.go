package main

// Exit codes reported by every subcommand.
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError  = 2 // Configuration error (missing config, invalid paths)
	ExitStorageError = 3 // Storage error (unreadable or unwritable data file)
	ExitDataError    = 4 // Data error (validation failure, book not found)
)
