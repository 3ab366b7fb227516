// Package blockexecution 提供区块执行游戏的配置实现
//
// ============================================================================
// 区块执行游戏 (Block Execution Game)
// ============================================================================
//
// 🎯 **游戏语义**：证明一个区块在VM语义下被正确执行。
// 客体程序消费区块见证输入，产出两个32字节公共值：
//   - inputHash：整个见证输入的SHA-256摘要
//   - blockId：被执行区块的标识
//
// 📋 **公共值布局**：abi.encode(bytes32 inputHash, bytes32 blockId)
//
// ============================================================================
package blockexecution

import (
	_ "embed"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// programELF 区块执行游戏的已编译程序二进制
//
//go:embed program/block_execution.elf
var programELF []byte

// publicValuesArgs 公共值缓冲区的ABI布局
var publicValuesArgs = abi.Arguments{
	{Name: "inputHash", Type: mustABIType("bytes32")},
	{Name: "blockId", Type: mustABIType("bytes32")},
}

// publicValuesSize 公共值缓冲区的严格长度（两个静态bytes32）
const publicValuesSize = 64

// Game 区块执行游戏配置（无状态单例）
type Game struct{}

// Name 返回游戏的稳定名称
func (Game) Name() string {
	return "block_execution"
}

// ELF 返回该游戏的程序二进制
func (Game) ELF() []byte {
	return programELF
}

// FixtureInput 将fixture映射为原始见证输入（委托fixture目录）
func (Game) FixtureInput(fixture fixtures.BlockExecutionFixture) ([]byte, error) {
	return fixtures.BlockExecutionInput(fixture)
}

// SolidityContext 可用于在Solidity中测试zkVM证明验证的fixture上下文
type SolidityContext struct {
	BlockID      [32]byte `json:"blockId"`
	InputHash    [32]byte `json:"inputHash"`
	Vkey         string   `json:"vkey"`
	PublicValues string   `json:"publicValues"`
	Proof        string   `json:"proof"`
}

// SolidityContext 按游戏布局严格解码公共值并构造链上验证上下文
func (Game) SolidityContext(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) (SolidityContext, error) {
	pv := proof.PublicValues

	// 严格模式：长度必须与静态布局完全一致，不允许静默截断
	if len(pv) != publicValuesSize {
		return SolidityContext{}, fmt.Errorf("public values must be %d bytes, got %d", publicValuesSize, len(pv))
	}

	values, err := publicValuesArgs.Unpack(pv)
	if err != nil {
		return SolidityContext{}, fmt.Errorf("abi decode failed: %w", err)
	}
	inputHash, ok := values[0].([32]byte)
	if !ok {
		return SolidityContext{}, fmt.Errorf("unexpected type for inputHash: %T", values[0])
	}
	blockID, ok := values[1].([32]byte)
	if !ok {
		return SolidityContext{}, fmt.Errorf("unexpected type for blockId: %T", values[1])
	}

	return SolidityContext{
		BlockID:      blockID,
		InputHash:    inputHash,
		Vkey:         vk.Bytes32().Hex(),
		PublicValues: hexutil.Encode(pv),
		Proof:        hexutil.Encode(proof.Bytes()),
	}, nil
}

// mustABIType 构造静态已知合法的ABI类型
func mustABIType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("invalid abi type %q: %v", t, err))
	}
	return typ
}
