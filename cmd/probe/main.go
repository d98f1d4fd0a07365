// Purpose: Provide the program entrypoint and invoke command execution.
// Exports: main.
// Role: Binary entrypoint for the probe CLI.
// Invariants: Only delegates to execute(); version is injected via ldflags.
package main

// version is set via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	execute()
}
