// Package proving 定义证明游戏系统与zkVM证明后端之间的公共契约
//
// 📋 **证明后端接口 (Proving Backend Interface)**
//
// 本包定义了证明执行后端的抽象接口以及其输入输出数据类型：
// - Backend：后端的setup/execute/prove/verify四项操作
// - ProvingMode：证明表示形式的选择（Core / Groth16 / PlonK）
// - Stdin：见证输入的暂存通道
// - ProofWithPublicValues / VerifyingKey / ExecutionReport：后端产出物
//
// 🎯 **设计原则**
// - 后端中立：接口不绑定任何具体证明系统实现
// - 不透明状态：证明密钥等后端内部状态对上层编排器保持不透明
// - 同步调用：所有操作均为阻塞调用，超时与取消由调用方负责
package proving

import (
	"fmt"
	"strings"
)

// ProvingMode 证明表示形式
//
// 🎯 **三种模式**：
//   - Core：后端原生的快速证明（默认），不适合链上验证
//   - Groth16：包装为Groth16配对证明，可在Solidity合约中验证
//   - Plonk：包装为PlonK配对证明，可在Solidity合约中验证
//
// Groth16/Plonk 在Core证明的基础上追加简洁包装，成本严格高于Core。
type ProvingMode int

const (
	// ModeCore 原生快速证明模式（默认值）
	ModeCore ProvingMode = iota

	// ModeGroth16 Groth16简洁包装模式
	ModeGroth16

	// ModePlonk PlonK简洁包装模式
	ModePlonk
)

// String 返回模式的规范名称
func (m ProvingMode) String() string {
	switch m {
	case ModeCore:
		return "core"
	case ModeGroth16:
		return "groth16"
	case ModePlonk:
		return "plonk"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// SupportsOnChainVerification 判断该模式的证明是否可用于链上验证
//
// 只有配对友好的简洁证明（Groth16/PlonK）才有链上验证的意义，
// Solidity fixture 导出只对这两种模式开放。
func (m ProvingMode) SupportsOnChainVerification() bool {
	return m == ModeGroth16 || m == ModePlonk
}

// ParseProvingMode 解析模式名称（大小写不敏感的规范名）
func ParseProvingMode(s string) (ProvingMode, error) {
	switch strings.ToLower(s) {
	case "core":
		return ModeCore, nil
	case "groth16":
		return ModeGroth16, nil
	case "plonk":
		return ModePlonk, nil
	default:
		return ModeCore, fmt.Errorf("unknown proving mode: %q (expected core|groth16|plonk)", s)
	}
}
