package decompression

import (
	"encoding/binary"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
	"github.com/fuellabs/fuel-proving-games/internal/core/testutil"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// ==================== 游戏配置 ====================

// TestGame_NameAndELF 测试游戏的基本能力描述
func TestGame_NameAndELF(t *testing.T) {
	game := Game{}
	assert.Equal(t, "decompression", game.Name())
	require.NotEmpty(t, game.ELF())
	assert.Equal(t, []byte("\x7fELF"), game.ELF()[:4])
}

// ==================== 客体程序 ====================

// TestGuest_CommitsHeightRange 测试客体提交的区间边界
func TestGuest_CommitsHeightRange(t *testing.T) {
	input, err := fixtures.DecompressionInput(fixtures.DecompressionBlobSmallRange)
	require.NoError(t, err)

	pv, report, err := Guest().Run(input)
	require.NoError(t, err)
	require.Len(t, pv, publicValuesSize)

	values, err := publicValuesArgs.Unpack(pv)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), values[0].(*big.Int).Uint64())
	assert.Equal(t, uint64(105), values[1].(*big.Int).Uint64())

	// 报告随解压字节数确定性缩放（512字节原始负载）
	assert.Equal(t, uint64(baseInstructions+512*instructionsPerByte), report.TotalInstructionCount)
	assert.Equal(t, uint64(6*syscallsPerBlock), report.TotalSyscallCount)
}

// TestGuest_TrapsOnInvalidRange 测试区间非法导致的陷入
func TestGuest_TrapsOnInvalidRange(t *testing.T) {
	payload := snappy.Encode(nil, []byte("data"))
	input := make([]byte, 16+len(payload))
	binary.BigEndian.PutUint64(input[0:8], 10)
	binary.BigEndian.PutUint64(input[8:16], 5) // first > last
	copy(input[16:], payload)

	_, _, err := Guest().Run(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid height range")
}

// TestGuest_TrapsOnCorruptPayload 测试载荷无法解压导致的陷入
func TestGuest_TrapsOnCorruptPayload(t *testing.T) {
	input := make([]byte, 16)
	binary.BigEndian.PutUint64(input[8:16], 1)
	input = append(input, 0xff, 0xff, 0xff, 0xff)

	_, _, err := Guest().Run(input)
	require.Error(t, err)
}

// TestGuest_TrapsOnTruncatedWitness 测试截断输入导致的陷入
func TestGuest_TrapsOnTruncatedWitness(t *testing.T) {
	_, _, err := Guest().Run([]byte("short"))
	require.Error(t, err)
}

// ==================== Solidity上下文 ====================

// TestSolidityContext_RendersHeightsAsUint256 测试高度的32字节大端渲染
func TestSolidityContext_RendersHeightsAsUint256(t *testing.T) {
	pv, err := publicValuesArgs.Pack(big.NewInt(14133451), big.NewInt(14136885))
	require.NoError(t, err)

	proof := &proving.ProofWithPublicValues{
		Mode:         proving.ModePlonk,
		PublicValues: pv,
		Proof:        []byte{0xab},
	}
	vk := &proving.VerifyingKey{Raw: []byte("vk")}

	ctx, err := Game{}.SolidityContext(proof, vk)
	require.NoError(t, err)

	assert.Equal(t, uint64(14133451), new(big.Int).SetBytes(ctx.FirstBlockHeight[:]).Uint64())
	assert.Equal(t, uint64(14136885), new(big.Int).SetBytes(ctx.LastBlockHeight[:]).Uint64())
	assert.Len(t, ctx.Vkey, 66)
	assert.Equal(t, "0xab", ctx.Proof)

	// 十六进制渲染必须可无损还原为原始缓冲区
	decodedPv, err := hexutil.Decode(ctx.PublicValues)
	require.NoError(t, err)
	assert.Equal(t, pv, decodedPv)
}

// TestSolidityContext_RejectsTruncatedPublicValues 测试严格长度检查
func TestSolidityContext_RejectsTruncatedPublicValues(t *testing.T) {
	proof := &proving.ProofWithPublicValues{PublicValues: make([]byte, 63)}

	_, err := Game{}.SolidityContext(proof, &proving.VerifyingKey{})
	require.Error(t, err)
}

// ==================== 端到端 ====================

// TestEndToEnd_CoreFixture 测试本地后端上的Core模式全流程
func TestEndToEnd_CoreFixture(t *testing.T) {
	logger := &testutil.MockLogger{}

	executor, err := NewDefaultExecutor(nil, logger)
	require.NoError(t, err)
	report, err := executor.ExecuteFixture(fixtures.DecompressionBlobSmallRange)
	require.NoError(t, err)
	assert.NotZero(t, report.TotalInstructionCount)

	prover, err := NewDefaultProver(nil, logger)
	require.NoError(t, err)
	proof, vk, err := prover.ProveFixture(fixtures.DecompressionBlobSmallRange, proving.ModeCore)
	require.NoError(t, err)
	require.NoError(t, prover.Verify(proof, vk))
}

// TestBatchExecution_AllFixtures 测试全部fixture的批量执行
func TestBatchExecution_AllFixtures(t *testing.T) {
	executor, err := NewDefaultExecutor(nil, &testutil.MockLogger{})
	require.NoError(t, err)

	for _, fixture := range fixtures.AllDecompressionFixtures() {
		report, err := executor.ExecuteFixture(fixture)
		require.NoError(t, err, "fixture %s", fixture)
		assert.NotZero(t, report.TotalInstructionCount, "fixture %s", fixture)
	}
}

// TestEndToEnd_PlonkFixtureExport 测试PlonK全流程与fixture导出
func TestEndToEnd_PlonkFixtureExport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping circuit setup in short mode")
	}

	prover, err := NewDefaultProver(nil, &testutil.MockLogger{})
	require.NoError(t, err)

	proof, vk, err := prover.ProveFixture(fixtures.DecompressionBlobSmallRange, proving.ModePlonk)
	require.NoError(t, err)
	require.NoError(t, prover.Verify(proof, vk))

	dir := t.TempDir()
	require.NoError(t, prover.CreateSolidityFixture(proof, vk, dir))

	data, err := os.ReadFile(filepath.Join(dir, "decompression-fixture.json"))
	require.NoError(t, err)

	var ctx SolidityContext
	require.NoError(t, json.Unmarshal(data, &ctx))
	assert.Len(t, ctx.Vkey, 66)
	assert.True(t, strings.HasPrefix(ctx.Proof, "0x"))

	// 导出的十六进制字段可无损还原为证明产出的原始缓冲区
	decodedPv, err := hexutil.Decode(ctx.PublicValues)
	require.NoError(t, err)
	assert.Equal(t, proof.PublicValues, decodedPv)
	decodedProof, err := hexutil.Decode(ctx.Proof)
	require.NoError(t, err)
	assert.Equal(t, proof.Proof, decodedProof)
}
