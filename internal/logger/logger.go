// Package logger provides the package-level zap logger shared by the
// render core's non-hot-path code (render start/finish, the OBJ loader's
// load summary). Render-path code (ColorAt, Lighting, intersections)
// never logs per pixel or per ray.
package logger

import "go.uber.org/zap"

// Log is the shared logger. It is a no-op logger until Init is called, so
// packages can log unconditionally without nil-checking in tests.
var Log *zap.Logger = zap.NewNop()

// Init replaces Log with a production JSON logger, or a development
// console logger when dev is true.
func Init(dev bool) error {
	var l *zap.Logger
	var err error
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries. Callers should defer it from main.
func Sync() {
	_ = Log.Sync()
}
