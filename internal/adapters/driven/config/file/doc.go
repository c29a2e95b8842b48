// Package file provides the TOML-backed ConfigStore.
//
// The config file supplies defaults for command-line flags:
//
//	[output]
//	color = "auto"        # auto | always | never
//	diff = false
//	diff_context = 3
//
//	[run]
//	dry_run = false
//
//	[log]
//	verbose = false
//	quiet = false
//
// Tables are flattened into dotted keys ("output.color").
package file
