package types

// LogLevel 日志级别类型（供 pkg/interfaces/infrastructure/log 及配置层共用）
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)
