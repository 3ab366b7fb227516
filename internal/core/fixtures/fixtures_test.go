package fixtures

import (
	"encoding/binary"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockExecutionInput_Deterministic 测试同一fixture的输入逐字节稳定
func TestBlockExecutionInput_Deterministic(t *testing.T) {
	for _, fixture := range AllBlockExecutionFixtures() {
		a, err := BlockExecutionInput(fixture)
		require.NoError(t, err)
		b, err := BlockExecutionInput(fixture)
		require.NoError(t, err)
		assert.Equal(t, a, b, "fixture %s", fixture)
	}
}

// TestBlockExecutionInput_Layout 测试见证输入的二进制布局
func TestBlockExecutionInput_Layout(t *testing.T) {
	input, err := BlockExecutionInput(BlockExecutionTransferHeavy)
	require.NoError(t, err)

	// blockID[32] || txCount(u32) || txCount×u64
	txCount := binary.BigEndian.Uint32(input[32:36])
	assert.Equal(t, uint32(64), txCount)
	assert.Len(t, input, 32+4+8*64)
}

// TestBlockExecutionInput_DistinctPerFixture 测试不同fixture产出不同输入
func TestBlockExecutionInput_DistinctPerFixture(t *testing.T) {
	add, err := BlockExecutionInput(BlockExecutionAddOpcode)
	require.NoError(t, err)
	mul, err := BlockExecutionInput(BlockExecutionMulOpcode)
	require.NoError(t, err)
	assert.NotEqual(t, add, mul)
}

// TestParseBlockExecutionFixture 测试fixture名称解析
func TestParseBlockExecutionFixture(t *testing.T) {
	f, err := ParseBlockExecutionFixture("mainnet_block_1522295")
	require.NoError(t, err)
	assert.Equal(t, BlockExecutionMainnet1522295, f)

	_, err = ParseBlockExecutionFixture("no_such_block")
	require.Error(t, err)
}

// TestDecompressionInput_Deterministic 测试同一fixture的输入逐字节稳定
func TestDecompressionInput_Deterministic(t *testing.T) {
	for _, fixture := range AllDecompressionFixtures() {
		a, err := DecompressionInput(fixture)
		require.NoError(t, err)
		b, err := DecompressionInput(fixture)
		require.NoError(t, err)
		assert.Equal(t, a, b, "fixture %s", fixture)
	}
}

// TestDecompressionInput_Layout 测试区间边界与载荷可解压性
func TestDecompressionInput_Layout(t *testing.T) {
	input, err := DecompressionInput(DecompressionBlobSmallRange)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), binary.BigEndian.Uint64(input[0:8]))
	assert.Equal(t, uint64(105), binary.BigEndian.Uint64(input[8:16]))

	payload, err := snappy.Decode(nil, input[16:])
	require.NoError(t, err)
	assert.Len(t, payload, 512)
}

// TestParseDecompressionFixture 测试fixture名称解析
func TestParseDecompressionFixture(t *testing.T) {
	f, err := ParseDecompressionFixture("blob_small_range")
	require.NoError(t, err)
	assert.Equal(t, DecompressionBlobSmallRange, f)

	_, err = ParseDecompressionFixture("blob_bogus")
	require.Error(t, err)
}

// TestDeterministicStream_Properties 测试确定性字节流的基本性质
func TestDeterministicStream_Properties(t *testing.T) {
	a := newDeterministicStream("seed")
	b := newDeterministicStream("seed")
	c := newDeterministicStream("other")

	// 同种子同序列
	assert.Equal(t, a.nextUint64(), b.nextUint64())
	assert.Equal(t, a.nextBytes(100), b.nextBytes(100))

	// 异种子异序列
	assert.NotEqual(t, newDeterministicStream("seed").nextUint64(), c.nextUint64())
}
