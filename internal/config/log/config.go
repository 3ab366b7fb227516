package log

import (
	"go.uber.org/zap/zapcore"
)

// LogOptions 日志配置选项
// 专注于基础设施核心功能的简化配置
type LogOptions struct {
	// === 基础配置 ===
	Level     string `json:"level"`      // 日志级别 (debug, info, warn, error, fatal)
	ToConsole bool   `json:"to_console"` // 是否输出到控制台
	FilePath  string `json:"file_path"`  // 日志文件路径（为空时不写文件）

	// === 基础轮转配置 ===
	MaxSize    int  `json:"max_size"`    // 单个日志文件最大大小(MB)
	MaxBackups int  `json:"max_backups"` // 最大备份文件数
	MaxAge     int  `json:"max_age"`     // 日志文件最大保留天数
	Compress   bool `json:"compress"`    // 是否压缩历史日志文件

	// === 调试配置 ===
	EnableCaller bool `json:"enable_caller"` // 是否启用调用者信息

	// === 内部配置（不对外暴露） ===
	LevelMap map[string]zapcore.Level `json:"-"` // 级别映射
}

// Config 日志配置实现
type Config struct {
	options *LogOptions
}

// New 创建日志配置实现
func New(userOptions *LogOptions) *Config {
	// 1. 先创建完整的默认配置
	options := createDefaultLogOptions()

	// 2. 如果有用户配置，应用用户配置覆盖默认值
	if userOptions != nil {
		applyUserLogOptions(options, userOptions)
	}

	return &Config{
		options: options,
	}
}

// Options 返回配置选项
func (c *Config) Options() *LogOptions {
	return c.options
}

// ZapLevel 返回配置级别对应的zap级别
func (c *Config) ZapLevel() zapcore.Level {
	if level, ok := c.options.LevelMap[c.options.Level]; ok {
		return level
	}
	return zapcore.InfoLevel
}

// createDefaultLogOptions 创建默认日志配置
func createDefaultLogOptions() *LogOptions {
	return &LogOptions{
		Level:     defaultLogLevel,
		ToConsole: defaultToConsole,
		FilePath:  defaultFilePath,

		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAge,
		Compress:   defaultCompress,

		EnableCaller: defaultEnableCaller,

		LevelMap: defaultLevelMap,
	}
}

// applyUserLogOptions 应用用户日志配置覆盖默认值
func applyUserLogOptions(options, user *LogOptions) {
	if user.Level != "" {
		options.Level = user.Level
	}
	options.ToConsole = user.ToConsole
	if user.FilePath != "" {
		options.FilePath = user.FilePath
	}
	if user.MaxSize > 0 {
		options.MaxSize = user.MaxSize
	}
	if user.MaxBackups > 0 {
		options.MaxBackups = user.MaxBackups
	}
	if user.MaxAge > 0 {
		options.MaxAge = user.MaxAge
	}
	options.Compress = user.Compress
	options.EnableCaller = user.EnableCaller
}
