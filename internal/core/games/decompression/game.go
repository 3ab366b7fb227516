// Package decompression 提供解压缩游戏的配置实现
//
// ============================================================================
// 解压缩游戏 (Decompression Game)
// ============================================================================
//
// 🎯 **游戏语义**：证明一段压缩的区块区间数据被正确解压。
// 客体程序消费区间边界与压缩载荷，产出两个uint256公共值：
// 区间的首末区块高度。
//
// 📋 **公共值布局**：abi.encode(uint256 firstBlockHeight, uint256 lastBlockHeight)
//
// ============================================================================
package decompression

import (
	_ "embed"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// programELF 解压缩游戏的已编译程序二进制
//
//go:embed program/decompression.elf
var programELF []byte

// publicValuesArgs 公共值缓冲区的ABI布局
var publicValuesArgs = abi.Arguments{
	{Name: "firstBlockHeight", Type: mustABIType("uint256")},
	{Name: "lastBlockHeight", Type: mustABIType("uint256")},
}

// publicValuesSize 公共值缓冲区的严格长度（两个静态uint256）
const publicValuesSize = 64

// Game 解压缩游戏配置（无状态单例）
type Game struct{}

// Name 返回游戏的稳定名称
func (Game) Name() string {
	return "decompression"
}

// ELF 返回该游戏的程序二进制
func (Game) ELF() []byte {
	return programELF
}

// FixtureInput 将fixture映射为原始见证输入（委托fixture目录）
func (Game) FixtureInput(fixture fixtures.DecompressionFixture) ([]byte, error) {
	return fixtures.DecompressionInput(fixture)
}

// SolidityContext 可用于在Solidity中测试zkVM证明验证的fixture上下文
//
// 区块高度以32字节大端序数值呈现，与链上uint256语义对齐。
type SolidityContext struct {
	FirstBlockHeight [32]byte `json:"firstBlockHeight"`
	LastBlockHeight  [32]byte `json:"lastBlockHeight"`
	Vkey             string   `json:"vkey"`
	PublicValues     string   `json:"publicValues"`
	Proof            string   `json:"proof"`
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
	first, ok := values[0].(*big.Int)
	if !ok {
		return SolidityContext{}, fmt.Errorf("unexpected type for firstBlockHeight: %T", values[0])
	}
	last, ok := values[1].(*big.Int)
	if !ok {
		return SolidityContext{}, fmt.Errorf("unexpected type for lastBlockHeight: %T", values[1])
	}

	var ctx SolidityContext
	first.FillBytes(ctx.FirstBlockHeight[:])
	last.FillBytes(ctx.LastBlockHeight[:])
	ctx.Vkey = vk.Bytes32().Hex()
	ctx.PublicValues = hexutil.Encode(pv)
	ctx.Proof = hexutil.Encode(proof.Bytes())
	return ctx, nil
}

// mustABIType 构造静态已知合法的ABI类型
func mustABIType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("invalid abi type %q: %v", t, err))
	}
	return typ
}
