package core

// Logger is the minimal logging seam shared by the CLI renderer and the web
// preview server. Implementations must be safe for concurrent use.
type Logger interface {
	Printf(format string, args ...interface{})
}
