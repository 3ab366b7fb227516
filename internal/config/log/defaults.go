package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
// 这些默认值面向本地证明与基准测量的使用场景
const (
	// defaultLogLevel 默认日志级别设为"info"
	// 原因：info级别平衡了信息量和性能，记录证明生命周期的关键事件
	defaultLogLevel = "info"

	// defaultToConsole 默认启用控制台输出
	// 原因：证明任务通常在前台运行，控制台输出提供即时反馈
	defaultToConsole = true

	// defaultFilePath 默认不写日志文件
	// 原因：CLI场景下证明产物已落盘，日志文件按需通过配置开启
	defaultFilePath = ""

	// defaultMaxSize 单个日志文件最大大小设为100MB
	defaultMaxSize = 100

	// defaultMaxBackups 最大备份文件数设为10
	defaultMaxBackups = 10

	// defaultMaxAge 日志文件最大保留天数设为30天
	defaultMaxAge = 30

	// defaultCompress 默认压缩历史日志
	defaultCompress = true

	// defaultEnableCaller 默认关闭调用者信息
	// 原因：证明调用栈层级固定，调用者信息对排障帮助有限
	defaultEnableCaller = false
)

// defaultLevelMap 级别名称到zap级别的映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}
