// Package harness 提供证明游戏的通用编排能力
//
// ============================================================================
// 证明游戏通用编排框架
// ============================================================================
//
// 🎯 **目的**：
//   - 将游戏差异（程序二进制、输入编码、公共值布局）与通用证明生命周期解耦
//   - 一套编排算法服务多个游戏，游戏在编译期绑定，无运行时分发成本
//
// 📋 **组成**：
//   - GameConfig：每个游戏实现一次的能力描述符
//   - GameProver：setup → 输入暂存 → 证明 → 验证 → fixture导出 的完整生命周期
//   - GameExecutor：trace-and-report纯执行，用于低成本校验与性能测量
//
// ============================================================================
package harness

import (
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// GameConfig 游戏能力描述符
//
// 每个游戏提供一个无状态的单例实现。类型参数：
//   - F：游戏的fixture标识符类型（封闭枚举，支持结构相等与调试格式化）
//   - C：游戏的Solidity上下文类型（可JSON序列化）
//
// 所有方法都是纯函数或常量：ELF在进程生命周期内返回相同字节序列，
// Name 是稳定、唯一、可小写化的标识，用于命名导出产物。
type GameConfig[F comparable, C any] interface {
	// Name 返回游戏的稳定名称（用作产物文件名词干）
	Name() string

	// ELF 返回该游戏的已编译程序二进制
	ELF() []byte

	// FixtureInput 将fixture标识符映射为原始见证输入字节
	//
	// 映射委托给外部fixture目录；失败属于配置错误而非运行时状况。
	FixtureInput(fixture F) ([]byte, error)

	// SolidityContext 将(证明, 验证密钥)对映射为游戏专属的链上验证上下文
	//
	// 按游戏固定的二进制布局严格解码公共值缓冲区（malformed必须报错，
	// 不允许静默截断），并将验证密钥、公共值与证明体渲染为十六进制。
	SolidityContext(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) (C, error)
}
