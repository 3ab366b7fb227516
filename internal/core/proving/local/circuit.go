package local

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	mimcnative "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
	stdmimc "github.com/consensys/gnark/std/hash/mimc"
)

// ============================================================================
// 执行轨迹承诺电路
// ============================================================================
//
// 🎯 **目的**：
//   - 将一次客体执行绑定到 (程序二进制, 见证输入, 公共值) 三元组
//   - 程序摘要在编译期固化为电路常量，使密钥对按程序二进制区分
//   - 输入摘要作为私有见证，公共值摘要与承诺作为公开输入
//
// 📋 **约束**：
//   MiMC(programDigest, inputDigest, publicValuesDigest) == traceCommitment
//
// ============================================================================

// traceCircuit 执行轨迹承诺电路
type traceCircuit struct {
	// PublicValuesDigest 公共值缓冲区摘要（公开输入）
	PublicValuesDigest frontend.Variable `gnark:",public"`

	// TraceCommitment 执行轨迹承诺（公开输入）
	TraceCommitment frontend.Variable `gnark:",public"`

	// InputDigest 见证输入摘要（私有见证）
	InputDigest frontend.Variable

	// programDigest 程序摘要，编译期固化为电路常量
	programDigest *big.Int
}

// Define 定义电路约束
func (c *traceCircuit) Define(api frontend.API) error {
	h, err := stdmimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("构建MiMC哈希失败: %w", err)
	}

	h.Write(c.programDigest, c.InputDigest, c.PublicValuesDigest)
	api.AssertIsEqual(h.Sum(), c.TraceCommitment)
	return nil
}

// digestToField 将32字节摘要映射为BN254标量域元素（mod r）
func digestToField(digest [32]byte) fr.Element {
	var el fr.Element
	el.SetBytes(digest[:])
	return el
}

// hashToField 计算数据的SHA-256摘要并映射为标量域元素
func hashToField(data []byte) fr.Element {
	return digestToField(sha256.Sum256(data))
}

// computeTraceCommitment 在电路外计算轨迹承诺
//
// 逐元素写入与电路内MiMC逐变量写入保持一致，两侧结果可互验。
func computeTraceCommitment(program, input, publicValues fr.Element) ([]byte, error) {
	h := mimcnative.NewMiMC()
	for _, el := range []fr.Element{program, input, publicValues} {
		if _, err := h.Write(el.Marshal()); err != nil {
			return nil, fmt.Errorf("计算轨迹承诺失败: %w", err)
		}
	}
	return h.Sum(nil), nil
}

// fieldToBig 标量域元素转big.Int（witness赋值用）
func fieldToBig(el fr.Element) *big.Int {
	return el.BigInt(new(big.Int))
}
