package proving

// Backend zkVM证明后端接口
//
// 🎯 **抽象接口**：对上层编排器暴露证明生命周期的四项操作。
// 后端可能是进程内实现，也可能代理远程证明服务；所有调用均为
// 同步阻塞调用，证明生成可能持续数秒到数分钟。
//
// 📋 **契约说明**：
//   - Setup 对固定的程序二进制是确定的，密钥对归后端所有
//   - Execute 只做trace-and-report执行，不产生证明
//   - Prove 按所选模式产出最终证明表示
//   - Verify 是信任证明前必须执行的权威校验
//
// ⚠️ 并发安全性由具体后端自身声明，接口层不做互斥保证。
type Backend interface {
	// Setup 为程序二进制派生证明/验证密钥对
	Setup(elf []byte) (ProvingKey, *VerifyingKey, error)

	// Execute 以trace-and-report模式执行程序，返回程序输出与执行报告
	Execute(elf []byte, stdin *Stdin) ([]byte, *ExecutionReport, error)

	// Prove 使用证明密钥与暂存输入生成指定模式的证明
	Prove(pk ProvingKey, stdin *Stdin, mode ProvingMode) (*ProofWithPublicValues, error)

	// Verify 校验证明与验证密钥是否匹配
	Verify(proof *ProofWithPublicValues, vk *VerifyingKey) error
}
