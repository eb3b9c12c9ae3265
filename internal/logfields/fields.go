package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID   = "run_id"
	KeyRoot    = "root"
	KeyPath    = "path"
	KeyFile    = "file"
	KeyProject = "project"
	KeyCount   = "count"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr   { return slog.String(KeyRunID, id) }
func Root(r string) slog.Attr     { return slog.String(KeyRoot, r) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func File(f string) slog.Attr     { return slog.String(KeyFile, f) }
func Project(p string) slog.Attr  { return slog.String(KeyProject, p) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
