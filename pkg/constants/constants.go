// Package constants provides shared constants used throughout the library
// build system. This includes timeouts, limits, file permissions, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to upstream APIs
	DefaultHTTPTimeout = 30 * time.Second

	// BuildTimeout is the timeout for a full catalog build run
	BuildTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// DiscussionPageSize is the number of discussion nodes requested per run
	DiscussionPageSize = 50

	// DefaultNewestLimit is the default size of the "newest games" slice
	DefaultNewestLimit = 6
)

// Catalog constants define fixed catalog-level values
const (
	// SubmissionCategory is the discussion category that marks a game submission
	SubmissionCategory = "Game"

	// UserAgent identifies this tool to upstream APIs
	UserAgent = "game-club-library-build/1.0"
)
