// Package log 提供证明游戏系统的日志级别接口定义
//
// 📊 **日志级别管理 (Log Level Management)**
//
// 本文件定义了系统的日志级别别名，专注于：
// - 统一的日志级别定义
// - 日志级别与配置层的共享
//
// 🎯 **设计原则**
// - 标准化：遵循常见的日志级别标准
// - 易用性：提供简单直观的级别常量
package log

import "github.com/fuellabs/fuel-proving-games/pkg/types"

// LogLevel 日志级别（定义位于 pkg/types）
type LogLevel = types.LogLevel

// 常量别名
const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
