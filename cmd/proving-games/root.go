package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuellabs/fuel-proving-games/internal/app"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigPath string // 配置文件路径
	OutputDir  string // Solidity fixture输出目录（覆盖配置）
}

var (
	globalFlags GlobalFlags
	harness     *app.Harness
	stopApp     func(context.Context) error
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "proving-games",
	Short: "Fuel证明游戏命令行工具",
	Long: `Fuel Proving Games CLI - zkVM证明游戏的执行与证明工具

支持的游戏:
- block-execution  区块执行游戏
- decompression    解压缩游戏

每个游戏提供两类操作:
- execute-fixture  以trace-and-report模式执行fixture，输出执行报告
- prove-fixture    生成指定模式的证明并验证；Groth16/PlonK模式额外
                   导出Solidity验证fixture`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 加载配置并装配应用容器
		options, err := app.LoadOptions(globalFlags.ConfigPath)
		if err != nil {
			return fmt.Errorf("加载配置: %w", err)
		}

		harness, stopApp, err = app.Build(cmd.Context(), options)
		if err != nil {
			return fmt.Errorf("装配应用: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if stopApp != nil {
			return stopApp(cmd.Context())
		}
		return nil
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// outputDir 返回生效的fixture输出目录（标志优先于配置）
func outputDir() string {
	if globalFlags.OutputDir != "" {
		return globalFlags.OutputDir
	}
	return harness.Config.Options().OutputDir
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigPath, "config", "", "配置文件路径 (JSON)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.OutputDir, "output", "", "Solidity fixture输出目录 (默认: contracts)")

	// 添加子命令
	rootCmd.AddCommand(blockExecutionCmd)
	rootCmd.AddCommand(decompressionCmd)
}
