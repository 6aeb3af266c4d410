// Package cli is responsible for parsing command-line arguments, merging them
// over the file and environment configuration layers, and handling
// process-level concerns like exit codes.
package cli
