package folio

import "log/slog"

// pkgLogger is nil until SetLogger is called; logger() then falls back to
// slog.Default so the host application's handler applies.
var pkgLogger *slog.Logger

// SetLogger routes folio's log output to l. Passing nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default().With("pkg", "folio")
}
