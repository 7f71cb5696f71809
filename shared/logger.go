package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_logger.go -package mocks masto_bridge/shared ILogger

// ILogger is the subset of charmbracelet/log's Logger that the bridge logs through.
type ILogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Infof(format string, args ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Warnf(format string, args ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Errorf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}
