package proving

// ExecutionReport 纯执行模式的统计报告
//
// 由后端在trace-and-report执行中产出，不伴随任何证明。
// 对确定性的后端与输入，报告内容是确定的。
type ExecutionReport struct {
	// TotalInstructionCount 执行的指令总数（周期数）
	TotalInstructionCount uint64

	// TotalSyscallCount 系统调用总数
	TotalSyscallCount uint64

	// TouchedMemoryAddresses 触碰过的不同内存地址数量
	TouchedMemoryAddresses uint64
}
