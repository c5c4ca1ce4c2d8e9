// Package cli is responsible for parsing command-line arguments, validating
// user input, building the zerolog logger, and mapping errors to process
// exit codes for the flowgen and flowbench binaries.
package cli
