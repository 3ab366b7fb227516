// Package local 提供本地开发用证明后端实现
//
// ============================================================================
// 本地证明后端 (Local Proving Backend)
// ============================================================================
//
// 🎯 **目的**：
//   - 实现 pkg/interfaces/proving.Backend，为游戏编排器提供进程内后端
//   - Core模式产出可复算的轨迹承诺证明（快速，不适合链上）
//   - Groth16/PlonK模式基于gnark产出真实的配对证明
//
// 📋 **设计原则**：
//   - 客体注册：程序语义按程序二进制摘要注册，后端不解释ELF内容
//   - 密钥缓存：setup结果按程序摘要LRU缓存，重复派生只发生一次
//   - 同步阻塞：所有操作一次性完成或失败，不做内部重试与超时
//
// ⚠️ **定位**：这是面向开发、测试与基准测量的后端；PlonK的SRS来自
// unsafekzg测试工具，不可用于生产部署。
//
// ============================================================================
package local

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"

	// 基础设施
	provingconfig "github.com/fuellabs/fuel-proving-games/internal/config/proving"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"

	// gnark ZK库
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	gnarklogger "github.com/consensys/gnark/logger"

	// zerolog for gnark logger
	"github.com/rs/zerolog"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// 本地后端固定使用BN254曲线（链上验证合约的预编译支持）
const backendCurve = ecc.BN254

// coreProofSize Core模式证明体长度：程序摘要+输入摘要+公共值摘要+承诺
const coreProofSize = 4 * 32

// setupEntry 一次setup的全部产物（证明密钥句柄，对上层不透明）
type setupEntry struct {
	programDigest [32]byte
	guest         Guest

	g16ccs constraint.ConstraintSystem
	g16pk  interface{}
	g16vk  interface{}

	plonkccs constraint.ConstraintSystem
	plonkpk  interface{}
	plonkvk  interface{}

	vk *proving.VerifyingKey
}

// Backend 本地证明后端
type Backend struct {
	logger log.Logger
	config *provingconfig.Config

	mu     sync.RWMutex
	guests map[[32]byte]Guest

	setups *lru.Cache[[32]byte, *setupEntry]

	groth16 provingScheme
	plonk   provingScheme
}

// New 创建本地证明后端
func New(config *provingconfig.Config, logger log.Logger) (*Backend, error) {
	if config == nil {
		config = provingconfig.New(nil)
	}

	setups, err := lru.New[[32]byte, *setupEntry](config.Options().SetupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("创建setup缓存失败: %w", err)
	}

	return &Backend{
		logger:  logger,
		config:  config,
		guests:  make(map[[32]byte]Guest),
		setups:  setups,
		groth16: newGroth16Scheme(logger),
		plonk:   newPlonkScheme(logger),
	}, nil
}

// RegisterGuest 按程序二进制注册客体程序语义
func (b *Backend) RegisterGuest(elf []byte, guest Guest) error {
	digest := sha256.Sum256(elf)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.guests[digest]; exists {
		return fmt.Errorf("%w: program=%x", ErrGuestAlreadyRegistered, digest[:8])
	}
	b.guests[digest] = guest

	b.logger.Debugf("guest registered: program=%x", digest[:8])
	return nil
}

// lookupGuest 按摘要查找客体程序
func (b *Backend) lookupGuest(digest [32]byte) (Guest, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	guest, ok := b.guests[digest]
	if !ok {
		return nil, WrapGuestNotRegisteredError(digest)
	}
	return guest, nil
}

// Setup 为程序二进制派生证明/验证密钥对
//
// 结果按程序摘要LRU缓存：同一进程内对同一程序的重复setup返回
// 同一密钥对。电路将程序摘要固化为常量，不同程序得到不同密钥。
func (b *Backend) Setup(elf []byte) (proving.ProvingKey, *proving.VerifyingKey, error) {
	digest := sha256.Sum256(elf)

	if entry, ok := b.setups.Get(digest); ok {
		return entry, entry.vk, nil
	}

	guest, err := b.lookupGuest(digest)
	if err != nil {
		return nil, nil, err
	}

	restore := b.silenceGnarkLogger()
	defer restore()

	start := time.Now()

	programField := digestToField(digest)
	circuit := &traceCircuit{programDigest: fieldToBig(programField)}

	// Groth16侧：R1CS编译 + 可信设置
	g16ccs, err := frontend.Compile(backendCurve.ScalarField(), b.groth16.GetBuilder(), circuit)
	if err != nil {
		return nil, nil, fmt.Errorf("编译R1CS电路失败: %w", err)
	}
	g16pk, g16vk, err := b.groth16.Setup(g16ccs)
	if err != nil {
		return nil, nil, err
	}

	// PlonK侧：SCS编译 + SRS设置
	plonkccs, err := frontend.Compile(backendCurve.ScalarField(), b.plonk.GetBuilder(), circuit)
	if err != nil {
		return nil, nil, fmt.Errorf("编译SCS电路失败: %w", err)
	}
	plonkpk, plonkvk, err := b.plonk.Setup(plonkccs)
	if err != nil {
		return nil, nil, err
	}

	// 验证密钥序列化：两段长度前缀的方案密钥
	g16vkBytes, err := b.groth16.SerializeVerifyingKey(g16vk)
	if err != nil {
		return nil, nil, err
	}
	plonkvkBytes, err := b.plonk.SerializeVerifyingKey(plonkvk)
	if err != nil {
		return nil, nil, err
	}

	entry := &setupEntry{
		programDigest: digest,
		guest:         guest,
		g16ccs:        g16ccs,
		g16pk:         g16pk,
		g16vk:         g16vk,
		plonkccs:      plonkccs,
		plonkpk:       plonkpk,
		plonkvk:       plonkvk,
		vk: &proving.VerifyingKey{
			ProgramDigest: digest,
			Raw:           encodeVKSections(g16vkBytes, plonkvkBytes),
		},
	}
	b.setups.Add(digest, entry)

	b.logger.Infof("program setup complete: program=%x, elapsed=%s", digest[:8], time.Since(start))
	return entry, entry.vk, nil
}

// Execute 以trace-and-report模式执行程序
func (b *Backend) Execute(elf []byte, stdin *proving.Stdin) ([]byte, *proving.ExecutionReport, error) {
	digest := sha256.Sum256(elf)

	guest, err := b.lookupGuest(digest)
	if err != nil {
		return nil, nil, err
	}

	publicValues, report, err := guest.Run(stdin.Bytes())
	if err != nil {
		return nil, nil, WrapGuestTrapError(digest, err)
	}
	return publicValues, report, nil
}

// Prove 使用证明密钥与暂存输入生成指定模式的证明
func (b *Backend) Prove(pk proving.ProvingKey, stdin *proving.Stdin, mode proving.ProvingMode) (*proving.ProofWithPublicValues, error) {
	entry, ok := pk.(*setupEntry)
	if !ok {
		return nil, ErrInvalidProvingKey
	}

	sessionID := uuid.New().String()
	input := stdin.Bytes()
	start := time.Now()
	b.logger.Debugf("proving session started: session=%s, program=%x, mode=%s", sessionID, entry.programDigest[:8], mode)

	restore := b.silenceGnarkLogger()
	defer restore()

	// 运行客体得到公共值（客体陷入即证明失败）
	publicValues, _, err := entry.guest.Run(input)
	if err != nil {
		return nil, WrapGuestTrapError(entry.programDigest, err)
	}

	// 摘要与轨迹承诺
	programField := digestToField(entry.programDigest)
	inputField := hashToField(input)
	pvField := hashToField(publicValues)

	commitment, err := computeTraceCommitment(programField, inputField, pvField)
	if err != nil {
		return nil, err
	}

	var body []byte
	switch mode {
	case proving.ModeCore:
		// Core：可复算的承诺证明，见证摘要随证明体公开
		body = make([]byte, 0, coreProofSize)
		body = append(body, entry.programDigest[:]...)
		body = append(body, inputField.Marshal()...)
		body = append(body, pvField.Marshal()...)
		body = append(body, commitment...)

	case proving.ModeGroth16, proving.ModePlonk:
		scheme, ccs, schemePk := b.groth16, entry.g16ccs, entry.g16pk
		if mode == proving.ModePlonk {
			scheme, ccs, schemePk = b.plonk, entry.plonkccs, entry.plonkpk
		}

		assignment := &traceCircuit{
			PublicValuesDigest: fieldToBig(pvField),
			TraceCommitment:    new(big.Int).SetBytes(commitment),
			InputDigest:        fieldToBig(inputField),
		}

		w, err := frontend.NewWitness(assignment, backendCurve.ScalarField())
		if err != nil {
			return nil, fmt.Errorf("构建证明witness失败: %w", err)
		}

		proofAny, err := scheme.Prove(ccs, schemePk, w)
		if err != nil {
			return nil, err
		}
		proofBytes, err := scheme.SerializeProof(proofAny)
		if err != nil {
			return nil, err
		}

		body = make([]byte, 0, 32+len(proofBytes))
		body = append(body, commitment...)
		body = append(body, proofBytes...)

	default:
		return nil, fmt.Errorf("unsupported proving mode: %s", mode)
	}

	b.logger.Infof("proving session finished: session=%s, mode=%s, proof_bytes=%d, elapsed=%s",
		sessionID, mode, len(body), time.Since(start))

	return &proving.ProofWithPublicValues{
		Mode:         mode,
		PublicValues: publicValues,
		Proof:        body,
	}, nil
}

// Verify 校验证明与验证密钥是否匹配
func (b *Backend) Verify(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) error {
	switch proof.Mode {
	case proving.ModeCore:
		return b.verifyCore(proof, vk)
	case proving.ModeGroth16:
		return b.verifyWrapped(b.groth16, 0, proof, vk)
	case proving.ModePlonk:
		return b.verifyWrapped(b.plonk, 1, proof, vk)
	default:
		return fmt.Errorf("unsupported proving mode: %s", proof.Mode)
	}
}

// verifyCore 复算Core模式的轨迹承诺
func (b *Backend) verifyCore(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) error {
	if len(proof.Proof) != coreProofSize {
		return WrapMalformedProofError(fmt.Sprintf("core proof must be %d bytes, got %d", coreProofSize, len(proof.Proof)))
	}

	var programDigest [32]byte
	copy(programDigest[:], proof.Proof[0:32])
	if programDigest != vk.ProgramDigest {
		return ErrProgramMismatch
	}

	var inputField, pvField fr.Element
	if err := inputField.SetBytesCanonical(proof.Proof[32:64]); err != nil {
		return WrapMalformedProofError("input digest not a canonical field element")
	}
	if err := pvField.SetBytesCanonical(proof.Proof[64:96]); err != nil {
		return WrapMalformedProofError("public values digest not a canonical field element")
	}

	// 公共值摘要必须与证明附带的公共值缓冲区一致
	expectedPv := hashToField(proof.PublicValues)
	if !pvField.Equal(&expectedPv) {
		return WrapMalformedProofError("public values digest mismatch")
	}

	commitment, err := computeTraceCommitment(digestToField(vk.ProgramDigest), inputField, pvField)
	if err != nil {
		return err
	}
	if !bytes.Equal(commitment, proof.Proof[96:128]) {
		return ErrCommitmentMismatch
	}
	return nil
}

// verifyWrapped 校验Groth16/PlonK包装证明
func (b *Backend) verifyWrapped(scheme provingScheme, vkSectionIndex int, proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) error {
	if len(proof.Proof) <= 32 {
		return WrapMalformedProofError("wrapped proof too short")
	}
	commitment := proof.Proof[:32]
	proofBytes := proof.Proof[32:]

	vkBytes, err := vkSection(vk.Raw, vkSectionIndex)
	if err != nil {
		return err
	}
	vkAny, err := scheme.DeserializeVerifyingKey(vkBytes, backendCurve)
	if err != nil {
		return err
	}
	proofAny, err := scheme.DeserializeProof(proofBytes, backendCurve)
	if err != nil {
		return err
	}

	pvField := hashToField(proof.PublicValues)
	assignment := &traceCircuit{
		PublicValuesDigest: fieldToBig(pvField),
		TraceCommitment:    new(big.Int).SetBytes(commitment),
	}
	publicWitness, err := frontend.NewWitness(assignment, backendCurve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("构建公开witness失败: %w", err)
	}

	return scheme.Verify(proofAny, vkAny, publicWitness)
}

// silenceGnarkLogger 按配置屏蔽gnark库自身的日志输出
//
// gnark在编译与证明期间输出大量调试信息（compiling circuit、parsed
// circuit inputs等），会污染证明生命周期日志。gnark使用zerolog，
// 这里临时替换为丢弃输出的logger，返回恢复函数。
func (b *Backend) silenceGnarkLogger() func() {
	if b.config.Options().EnableGnarkLogs {
		return func() {}
	}

	oldLogger := gnarklogger.Logger()
	gnarklogger.Set(zerolog.New(io.Discard).Level(zerolog.Disabled))
	return func() {
		gnarklogger.Set(oldLogger)
	}
}

// encodeVKSections 将各方案的验证密钥编码为长度前缀的段序列
func encodeVKSections(sections ...[]byte) []byte {
	var n int
	for _, s := range sections {
		n += 4 + len(s)
	}
	out := make([]byte, 0, n)
	for _, s := range sections {
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s)))
		out = append(out, lenBuf[:]...)
		out = append(out, s...)
	}
	return out
}

// vkSection 取出第index段验证密钥
func vkSection(raw []byte, index int) ([]byte, error) {
	offset := 0
	for i := 0; ; i++ {
		if offset+4 > len(raw) {
			return nil, ErrMalformedVerifyingKey
		}
		n := int(binary.BigEndian.Uint32(raw[offset : offset+4]))
		offset += 4
		if offset+n > len(raw) {
			return nil, ErrMalformedVerifyingKey
		}
		if i == index {
			return raw[offset : offset+n], nil
		}
		offset += n
	}
}
