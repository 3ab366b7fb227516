package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuellabs/fuel-proving-games/internal/core/testutil"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

func newTestExecutor(backend proving.Backend) *GameExecutor[string, fakeContext, fakeGame] {
	return NewGameExecutor[string, fakeContext](backend, fakeGame{}, &testutil.MockLogger{})
}

// TestExecute_ReturnsBackendReport 测试执行的正常路径
func TestExecute_ReturnsBackendReport(t *testing.T) {
	var gotELF, gotInput []byte
	backend := &testutil.MockBackend{
		ExecuteFunc: func(elf []byte, stdin *proving.Stdin) ([]byte, *proving.ExecutionReport, error) {
			gotELF = elf
			gotInput = stdin.Bytes()
			return []byte("pv"), &proving.ExecutionReport{TotalInstructionCount: 42}, nil
		},
	}
	executor := newTestExecutor(backend)

	report, err := executor.Execute([]byte("witness"))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), report.TotalInstructionCount)

	// 程序二进制与输入必须原样传给后端
	assert.Equal(t, []byte("fake-elf"), gotELF)
	assert.Equal(t, []byte("witness"), gotInput)
}

// TestExecute_BackendFailureWrapped 测试后端执行失败时的错误包装
func TestExecute_BackendFailureWrapped(t *testing.T) {
	backend := &testutil.MockBackend{
		ExecuteFunc: func(elf []byte, stdin *proving.Stdin) ([]byte, *proving.ExecutionReport, error) {
			return nil, nil, errors.New("guest trapped")
		},
	}
	executor := newTestExecutor(backend)

	_, err := executor.Execute([]byte("witness"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutionFailed)
}

// TestExecuteFixture_UnknownFixture 测试fixture输入不可用时的错误包装
func TestExecuteFixture_UnknownFixture(t *testing.T) {
	executor := newTestExecutor(&testutil.MockBackend{})

	_, err := executor.ExecuteFixture("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFixtureInputUnavailable)
}
