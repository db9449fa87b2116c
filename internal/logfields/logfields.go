package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPackage    = "package"
	KeyItem       = "item"
	KeyKind       = "kind"
	KeyScopedName = "scoped_name"
	KeyPath       = "path"
	KeyTarget     = "target"
	KeyPages      = "pages"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr          { return slog.String(KeyRunID, id) }
func Package(name string) slog.Attr      { return slog.String(KeyPackage, name) }
func Item(name string) slog.Attr         { return slog.String(KeyItem, name) }
func Kind(kind string) slog.Attr         { return slog.String(KeyKind, kind) }
func ScopedName(name string) slog.Attr   { return slog.String(KeyScopedName, name) }
func Path(p string) slog.Attr            { return slog.String(KeyPath, p) }
func Target(t string) slog.Attr          { return slog.String(KeyTarget, t) }
func Pages(n int) slog.Attr              { return slog.Int(KeyPages, n) }
func DurationMS(ms float64) slog.Attr    { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr          { return slog.Any(KeyError, err) }
