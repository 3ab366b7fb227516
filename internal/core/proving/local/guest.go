package local

import (
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// Guest 客体程序语义
//
// 本地后端不实现RISC-V指令语义；客体程序以程序二进制的SHA-256摘要
// 注册到后端，由进程内的确定性实现给出与真实zkVM客体一致的
// 可观测行为：解析暂存输入、在输入非法时陷入、产出固定二进制布局
// 的公共值与确定性的执行报告。
type Guest interface {
	// Run 在给定的原始输入上运行客体程序
	//
	// 返回公共值缓冲区与执行报告；输入非法（截断、编码错误）时
	// 返回错误，对应真实程序的运行时陷入。
	Run(input []byte) (publicValues []byte, report *proving.ExecutionReport, err error)
}

// GuestFunc 函数式Guest适配器
type GuestFunc func(input []byte) ([]byte, *proving.ExecutionReport, error)

// Run 实现Guest接口
func (f GuestFunc) Run(input []byte) ([]byte, *proving.ExecutionReport, error) {
	return f(input)
}
