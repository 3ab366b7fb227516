// Package app 组装证明游戏工具的依赖注入容器
//
// ============================================================================
// 应用组装 (Application Assembly)
// ============================================================================
//
// 🎯 **职责**：
//   - 将配置、日志、本地证明后端与各游戏模块装配为一个fx容器
//   - 向CLI暴露已装配好的编排器句柄
//
// 📋 **装配顺序**：配置选项 → 日志 → 本地后端 → 游戏模块（注册客体）
//
// ============================================================================
package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	logconfig "github.com/fuellabs/fuel-proving-games/internal/config/log"
	provingconfig "github.com/fuellabs/fuel-proving-games/internal/config/proving"
	"github.com/fuellabs/fuel-proving-games/internal/core/games/blockexecution"
	"github.com/fuellabs/fuel-proving-games/internal/core/games/decompression"
	logimpl "github.com/fuellabs/fuel-proving-games/internal/core/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/internal/core/proving/local"
	logInterface "github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
)

// Harness 已装配的编排器句柄集合
type Harness struct {
	Logger logInterface.Logger
	Config *provingconfig.Config

	BlockExecutionProver   *blockexecution.Prover
	BlockExecutionExecutor *blockexecution.Executor
	DecompressionProver    *decompression.Prover
	DecompressionExecutor  *decompression.Executor
}

// Modules 返回应用的全部fx模块
func Modules(options *AppOptions) fx.Option {
	return fx.Options(
		fx.Provide(func() *AppOptions { return options }),
		fx.Provide(ProvideLogOptions),
		fx.Provide(ProvideProvingOptions),

		logimpl.Module(),
		local.Module(),
		blockexecution.Module(),
		decompression.Module(),
	)
}

// ProvideLogOptions 从应用配置取出日志选项段
func ProvideLogOptions(options *AppOptions) *logconfig.LogOptions {
	return options.Log
}

// ProvideProvingOptions 从应用配置取出证明选项段
func ProvideProvingOptions(options *AppOptions) *provingconfig.ProvingOptions {
	return options.Proving
}

// Build 装配容器并启动，返回编排器句柄与停止函数
//
// 调用方负责在使用结束后调用停止函数；启动失败时返回错误，
// 不留下半启动的容器。
func Build(ctx context.Context, options *AppOptions) (*Harness, func(context.Context) error, error) {
	harness := &Harness{}

	fxApp := fx.New(
		Modules(options),
		fx.Populate(
			&harness.Logger,
			&harness.Config,
			&harness.BlockExecutionProver,
			&harness.BlockExecutionExecutor,
			&harness.DecompressionProver,
			&harness.DecompressionExecutor,
		),
		fx.NopLogger,
	)

	if err := fxApp.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("启动应用容器失败: %w", err)
	}
	return harness, fxApp.Stop, nil
}
