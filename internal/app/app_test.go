package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
)

// TestLoadOptions_MissingFileReturnsEmpty 测试配置文件缺失时的默认行为
func TestLoadOptions_MissingFileReturnsEmpty(t *testing.T) {
	options, err := LoadOptions(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Nil(t, options.Log)
	assert.Nil(t, options.Proving)
}

// TestLoadOptions_ParsesSections 测试配置段解析
func TestLoadOptions_ParsesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"log":{"level":"debug"},"proving":{"output_dir":"artifacts"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	options, err := LoadOptions(path)
	require.NoError(t, err)
	require.NotNil(t, options.Log)
	require.NotNil(t, options.Proving)
	assert.Equal(t, "debug", options.Log.Level)
	assert.Equal(t, "artifacts", options.Proving.OutputDir)
}

// TestLoadOptions_MalformedFileRejected 测试非法配置文件被拒绝
func TestLoadOptions_MalformedFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadOptions(path)
	require.Error(t, err)
}

// TestBuild_AssemblesHarness 测试容器装配产出完整的编排器句柄
func TestBuild_AssemblesHarness(t *testing.T) {
	ctx := context.Background()

	harness, stop, err := Build(ctx, &AppOptions{})
	require.NoError(t, err)
	defer func() { _ = stop(ctx) }()

	require.NotNil(t, harness.Logger)
	require.NotNil(t, harness.Config)
	require.NotNil(t, harness.BlockExecutionProver)
	require.NotNil(t, harness.BlockExecutionExecutor)
	require.NotNil(t, harness.DecompressionProver)
	require.NotNil(t, harness.DecompressionExecutor)

	// 客体程序在启动时已注册：执行fixture应直接可用
	report, err := harness.BlockExecutionExecutor.ExecuteFixture(fixtures.BlockExecutionAddOpcode)
	require.NoError(t, err)
	assert.NotZero(t, report.TotalInstructionCount)
}
