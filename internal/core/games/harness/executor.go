package harness

import (
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// GameExecutor 证明游戏的通用执行编排器
//
// 🎯 **专门职责**：以trace-and-report模式运行游戏程序并返回执行报告
// （指令数、系统调用数、触碰内存地址数），不产生任何证明。
// 用于低成本的正确性校验与性能测量。
//
// 给定相同的输入字节与程序二进制（且后端确定），结果是确定的。
type GameExecutor[F comparable, C any, G GameConfig[F, C]] struct {
	backend proving.Backend
	game    G
	logger  log.Logger
}

// NewGameExecutor 包装给定后端创建执行编排器
func NewGameExecutor[F comparable, C any, G GameConfig[F, C]](backend proving.Backend, game G, logger log.Logger) *GameExecutor[F, C, G] {
	return &GameExecutor[F, C, G]{
		backend: backend,
		game:    game,
		logger:  logger,
	}
}

// Execute 使用原始输入字节执行游戏程序
//
// 后端报告运行时故障（程序陷入、输入编码非法）时返回执行错误，
// 错误只向上传递，不做重试。
func (e *GameExecutor[F, C, G]) Execute(input []byte) (*proving.ExecutionReport, error) {
	// 将输入暂存到全新的输入通道
	stdin := proving.NewStdin()
	stdin.WriteSlice(input)

	// trace-and-report执行
	_, report, err := e.backend.Execute(e.game.ELF(), stdin)
	if err != nil {
		return nil, WrapExecutionFailedError(e.game.Name(), err)
	}

	e.logger.Debugf("executed game: game=%s, cycles=%d", e.game.Name(), report.TotalInstructionCount)
	return report, nil
}

// ExecuteFixture 执行一个fixture
func (e *GameExecutor[F, C, G]) ExecuteFixture(fixture F) (*proving.ExecutionReport, error) {
	input, err := e.game.FixtureInput(fixture)
	if err != nil {
		return nil, WrapFixtureInputUnavailableError(e.game.Name(), fixture, err)
	}
	return e.Execute(input)
}
