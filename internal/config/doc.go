// Package config holds the settings of the hillclimb command and the layers
// they are assembled from. Values are merged in increasing precedence:
// built-in defaults, an optional HCL file, HILLCLIMB_* environment variables
// (a .env file fills in whatever the process environment leaves unset), and
// finally command-line flags, which are applied by package cli.
package config
