// Package fixtures 提供证明游戏的测试fixture目录
//
// ============================================================================
// Fixture目录 (Fixture Catalog)
// ============================================================================
//
// 🎯 **目的**：
//   - 为每个游戏维护封闭的fixture枚举（预定场景的稳定命名）
//   - 将fixture标识符映射为该游戏客体程序期望的原始见证输入
//   - 支持批量枚举（AllXxxFixtures），服务批量执行与报告
//
// 📋 **设计原则**：
//   - 确定性：同一fixture在任何时刻产出逐字节相同的输入
//   - 封闭性：fixture集合由目录独占管理，编排器不解释其内部结构
//
// ============================================================================
package fixtures

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// BlockExecutionFixture 区块执行游戏的fixture标识符
type BlockExecutionFixture string

// 区块执行游戏的预定场景：操作码基准区块与主网回放区块
const (
	BlockExecutionAddOpcode      BlockExecutionFixture = "add_opcode_block"
	BlockExecutionMulOpcode      BlockExecutionFixture = "mul_opcode_block"
	BlockExecutionTransferHeavy  BlockExecutionFixture = "transfer_heavy_block"
	BlockExecutionMainnet1522295 BlockExecutionFixture = "mainnet_block_1522295"
	BlockExecutionMainnet1561639 BlockExecutionFixture = "mainnet_block_1561639"
)

// blockExecutionTxCounts 各场景的交易规模
var blockExecutionTxCounts = map[BlockExecutionFixture]uint32{
	BlockExecutionAddOpcode:      8,
	BlockExecutionMulOpcode:      8,
	BlockExecutionTransferHeavy:  64,
	BlockExecutionMainnet1522295: 21,
	BlockExecutionMainnet1561639: 37,
}

// AllBlockExecutionFixtures 枚举区块执行游戏的全部fixture
func AllBlockExecutionFixtures() []BlockExecutionFixture {
	return []BlockExecutionFixture{
		BlockExecutionAddOpcode,
		BlockExecutionMulOpcode,
		BlockExecutionTransferHeavy,
		BlockExecutionMainnet1522295,
		BlockExecutionMainnet1561639,
	}
}

// ParseBlockExecutionFixture 解析fixture名称
func ParseBlockExecutionFixture(s string) (BlockExecutionFixture, error) {
	f := BlockExecutionFixture(s)
	if _, ok := blockExecutionTxCounts[f]; !ok {
		return "", fmt.Errorf("unknown block execution fixture: %q", s)
	}
	return f, nil
}

// BlockExecutionInput 将fixture映射为区块执行游戏的原始见证输入
//
// 输入布局（客体程序的期望编码）：
//
//	blockID[32] || txCount(u32 BE) || txCount × txValue(u64 BE)
//
// 全部内容由fixture名称确定性展开。
func BlockExecutionInput(fixture BlockExecutionFixture) ([]byte, error) {
	txCount, ok := blockExecutionTxCounts[fixture]
	if !ok {
		return nil, fmt.Errorf("unknown block execution fixture: %q", fixture)
	}

	blockID := sha256.Sum256([]byte("block_execution/" + string(fixture)))

	input := make([]byte, 0, 32+4+8*int(txCount))
	input = append(input, blockID[:]...)

	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], txCount)
	input = append(input, countBuf[:]...)

	stream := newDeterministicStream("block_execution/txs/" + string(fixture))
	var valueBuf [8]byte
	for i := uint32(0); i < txCount; i++ {
		binary.BigEndian.PutUint64(valueBuf[:], stream.nextUint64())
		input = append(input, valueBuf[:]...)
	}
	return input, nil
}

// deterministicStream SHA-256计数器模式的确定性字节流
type deterministicStream struct {
	seed    [32]byte
	counter uint64
	buf     []byte
}

func newDeterministicStream(seed string) *deterministicStream {
	return &deterministicStream{seed: sha256.Sum256([]byte(seed))}
}

func (s *deterministicStream) nextBlock() []byte {
	var block [40]byte
	copy(block[:32], s.seed[:])
	binary.BigEndian.PutUint64(block[32:], s.counter)
	s.counter++
	digest := sha256.Sum256(block[:])
	return digest[:]
}

func (s *deterministicStream) nextUint64() uint64 {
	if len(s.buf) < 8 {
		s.buf = append(s.buf, s.nextBlock()...)
	}
	v := binary.BigEndian.Uint64(s.buf[:8])
	s.buf = s.buf[8:]
	return v
}

func (s *deterministicStream) nextBytes(n int) []byte {
	for len(s.buf) < n {
		s.buf = append(s.buf, s.nextBlock()...)
	}
	out := make([]byte, n)
	copy(out, s.buf[:n])
	s.buf = s.buf[n:]
	return out
}
