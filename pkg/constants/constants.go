// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file permissions, default locations and formatting values
// that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog file defaults
const (
	// DefaultCatalogFile is the catalog location used when none is configured
	DefaultCatalogFile = "library.json"

	// JSONIndent is the indentation written into JSON catalog files
	JSONIndent = "    "

	// YAMLIndent is the indentation width written into YAML catalog files
	YAMLIndent = 2

	// TempSuffix is appended to the catalog path while a new copy is written
	TempSuffix = ".tmp"
)

// MinYear is the smallest publication year the interactive menu accepts.
const MinYear = 0

// ShutdownTimeout is how long the CLI waits for cleanup after an error.
const ShutdownTimeout = 5 * time.Second
