package decompression

import (
	provingConfig "github.com/fuellabs/fuel-proving-games/internal/config/proving"
	"github.com/fuellabs/fuel-proving-games/internal/core/fixtures"
	"github.com/fuellabs/fuel-proving-games/internal/core/games/harness"
	logimpl "github.com/fuellabs/fuel-proving-games/internal/core/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/internal/core/proving/local"
	logInterface "github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// Prover 解压缩游戏的证明编排器（具体实例化）
type Prover = harness.GameProver[fixtures.DecompressionFixture, SolidityContext, Game]

// Executor 解压缩游戏的执行编排器（具体实例化）
type Executor = harness.GameExecutor[fixtures.DecompressionFixture, SolidityContext, Game]

// NewProver 在给定后端上构造解压缩游戏的证明编排器
func NewProver(backend proving.Backend, logger logInterface.Logger) *Prover {
	return harness.NewGameProver[fixtures.DecompressionFixture, SolidityContext](backend, Game{}, logger)
}

// NewExecutor 在给定后端上构造解压缩游戏的执行编排器
func NewExecutor(backend proving.Backend, logger logInterface.Logger) *Executor {
	return harness.NewGameExecutor[fixtures.DecompressionFixture, SolidityContext](backend, Game{}, logger)
}

// RegisterGuest 将解压缩客体程序注册到本地后端
func RegisterGuest(backend *local.Backend) error {
	return backend.RegisterGuest(programELF, Guest())
}

// NewDefaultProver 构造带默认本地后端的证明编排器（开发与测试用）
func NewDefaultProver(config *provingConfig.Config, logger logInterface.Logger) (*Prover, error) {
	backend, err := local.New(config, logger)
	if err != nil {
		return nil, err
	}
	if err := RegisterGuest(backend); err != nil {
		return nil, err
	}
	return NewProver(backend, logger), nil
}

// NewDefaultExecutor 构造带默认本地后端的执行编排器（开发与测试用）
func NewDefaultExecutor(config *provingConfig.Config, logger logInterface.Logger) (*Executor, error) {
	backend, err := local.New(config, logger)
	if err != nil {
		return nil, err
	}
	if err := RegisterGuest(backend); err != nil {
		return nil, err
	}
	return NewExecutor(backend, logger), nil
}

// ProveFixture 在新建的默认后端上证明一个fixture（一次性便捷入口）
func ProveFixture(fixture fixtures.DecompressionFixture, mode proving.ProvingMode) (*proving.ProofWithPublicValues, *proving.VerifyingKey, error) {
	prover, err := NewDefaultProver(nil, logimpl.Default())
	if err != nil {
		return nil, nil, err
	}
	return prover.ProveFixture(fixture, mode)
}

// ExecuteFixture 在新建的默认后端上执行一个fixture（一次性便捷入口）
func ExecuteFixture(fixture fixtures.DecompressionFixture) (*proving.ExecutionReport, error) {
	executor, err := NewDefaultExecutor(nil, logimpl.Default())
	if err != nil {
		return nil, err
	}
	return executor.ExecuteFixture(fixture)
}
