package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// GameProver 证明游戏的通用证明编排器
//
// 🎯 **专门职责**：驱动完整的证明生命周期：
// 输入暂存 → 密钥派生 → 按模式证明 → 验证 → Solidity fixture导出
//
// 每次 Prove 调用都是一次全新的状态遍历
// （Idle → InputStaged → KeysGenerated → Proving → Proved|Failed），
// 调用之间不保留任何状态，失败时丢弃全部中间产物，不做重试。
//
// 多个编排器实例可以包装同一个后端句柄；编排器自身不持有锁，
// 共享后端下的并发安全性由后端声明。
type GameProver[F comparable, C any, G GameConfig[F, C]] struct {
	backend proving.Backend
	game    G
	logger  log.Logger
}

// NewGameProver 包装给定后端创建证明编排器
func NewGameProver[F comparable, C any, G GameConfig[F, C]](backend proving.Backend, game G, logger log.Logger) *GameProver[F, C, G] {
	return &GameProver[F, C, G]{
		backend: backend,
		game:    game,
		logger:  logger,
	}
}

// Setup 为游戏程序派生证明/验证密钥对
//
// 独立暴露以便调用方按程序二进制缓存结果；Prove 内部每次调用
// 都会重新执行该步骤（缓存与否是后端的自由）。
func (p *GameProver[F, C, G]) Setup() (proving.ProvingKey, *proving.VerifyingKey, error) {
	pk, vk, err := p.backend.Setup(p.game.ELF())
	if err != nil {
		return nil, nil, WrapSetupFailedError(p.game.Name(), err)
	}
	return pk, vk, nil
}

// Prove 使用原始输入字节生成指定模式的证明
func (p *GameProver[F, C, G]) Prove(input []byte, mode proving.ProvingMode) (*proving.ProofWithPublicValues, *proving.VerifyingKey, error) {
	// 将输入暂存到全新的输入通道
	stdin := proving.NewStdin()
	stdin.WriteSlice(input)

	// 为程序派生密钥对
	pk, vk, err := p.Setup()
	if err != nil {
		return nil, nil, err
	}

	p.logger.Debugf("generating proof: game=%s, mode=%s, input_bytes=%d", p.game.Name(), mode, len(input))

	// 生成证明
	proof, err := p.backend.Prove(pk, stdin, mode)
	if err != nil {
		return nil, nil, WrapProofGenerationFailedError(p.game.Name(), err)
	}

	return proof, vk, nil
}

// ProveFixture 证明一个fixture
func (p *GameProver[F, C, G]) ProveFixture(fixture F, mode proving.ProvingMode) (*proving.ProofWithPublicValues, *proving.VerifyingKey, error) {
	input, err := p.game.FixtureInput(fixture)
	if err != nil {
		return nil, nil, WrapFixtureInputUnavailableError(p.game.Name(), fixture, err)
	}
	return p.Prove(input, mode)
}

// Verify 对照验证密钥校验证明
//
// 这是信任证明前的权威正确性检查，任何调用方都必须执行。
func (p *GameProver[F, C, G]) Verify(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) error {
	if err := p.backend.Verify(proof, vk); err != nil {
		return WrapProofVerificationFailedError(p.game.Name(), err)
	}
	return nil
}

// CreateSolidityFixture 将Solidity验证fixture写入输出目录
//
// 产物路径为 <outputDir>/<name小写>-fixture.json，已存在的文件会被
// 覆盖（不合并、不备份）。只有支持链上验证的模式（Groth16/PlonK）
// 才允许导出。
func (p *GameProver[F, C, G]) CreateSolidityFixture(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey, outputDir string) error {
	if !proof.Mode.SupportsOnChainVerification() {
		return fmt.Errorf("%w: game=%s, mode=%s", ErrModeNotOnChainVerifiable, p.game.Name(), proof.Mode)
	}

	// 解码公共值并构造游戏专属上下文
	ctx, err := p.game.SolidityContext(proof, vk)
	if err != nil {
		return WrapPublicValuesDecodeFailedError(p.game.Name(), err)
	}

	// 确定性的pretty JSON序列化
	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return WrapContextSerializationFailedError(p.game.Name(), err)
	}

	// 确保输出目录存在（递归创建）
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return WrapArtifactWriteFailedError(p.game.Name(), outputDir, err)
	}

	path := filepath.Join(outputDir, strings.ToLower(p.game.Name())+"-fixture.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return WrapArtifactWriteFailedError(p.game.Name(), path, err)
	}

	p.logger.Infof("solidity fixture written: game=%s, path=%s", p.game.Name(), path)
	return nil
}
