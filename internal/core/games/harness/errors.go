package harness

import (
	"errors"
	"fmt"
)

// ============================================================================
//                            证明游戏错误定义
// ============================================================================

var (
	// ErrProofGenerationFailed 证明生成失败错误
	ErrProofGenerationFailed = errors.New("failed to prove proving game")

	// ErrProofVerificationFailed 证明验证失败错误
	ErrProofVerificationFailed = errors.New("failed to verify proof")

	// ErrExecutionFailed 程序执行失败错误
	ErrExecutionFailed = errors.New("failed to execute proving game")

	// ErrSetupFailed 密钥派生失败错误
	ErrSetupFailed = errors.New("failed to setup proving game program")

	// ErrFixtureInputUnavailable fixture输入不可用错误
	ErrFixtureInputUnavailable = errors.New("fixture input unavailable")

	// ErrPublicValuesDecodeFailed 公共值解码失败错误
	ErrPublicValuesDecodeFailed = errors.New("failed to decode public values")

	// ErrContextSerializationFailed Solidity上下文序列化失败错误
	ErrContextSerializationFailed = errors.New("failed to serialize solidity context")

	// ErrArtifactWriteFailed fixture产物写入失败错误
	ErrArtifactWriteFailed = errors.New("failed to create solidity fixture")

	// ErrModeNotOnChainVerifiable 模式不支持链上验证错误
	ErrModeNotOnChainVerifiable = errors.New("proving mode not eligible for on-chain export")
)

// ============================================================================
//                               错误包装函数
// ============================================================================

// WrapProofGenerationFailedError 包装证明生成失败错误
func WrapProofGenerationFailedError(game string, err error) error {
	return fmt.Errorf("%w: game=%s, cause=%v", ErrProofGenerationFailed, game, err)
}

// WrapProofVerificationFailedError 包装证明验证失败错误
func WrapProofVerificationFailedError(game string, err error) error {
	return fmt.Errorf("%w: game=%s, cause=%v", ErrProofVerificationFailed, game, err)
}

// WrapExecutionFailedError 包装程序执行失败错误
func WrapExecutionFailedError(game string, err error) error {
	return fmt.Errorf("%w: game=%s, cause=%v", ErrExecutionFailed, game, err)
}

// WrapSetupFailedError 包装密钥派生失败错误
func WrapSetupFailedError(game string, err error) error {
	return fmt.Errorf("%w: game=%s, cause=%v", ErrSetupFailed, game, err)
}

// WrapFixtureInputUnavailableError 包装fixture输入不可用错误
func WrapFixtureInputUnavailableError(game string, fixture interface{}, err error) error {
	return fmt.Errorf("%w: game=%s, fixture=%v, cause=%v", ErrFixtureInputUnavailable, game, fixture, err)
}

// WrapPublicValuesDecodeFailedError 包装公共值解码失败错误
func WrapPublicValuesDecodeFailedError(game string, err error) error {
	return fmt.Errorf("%w: game=%s, cause=%v", ErrPublicValuesDecodeFailed, game, err)
}

// WrapContextSerializationFailedError 包装上下文序列化失败错误
func WrapContextSerializationFailedError(game string, err error) error {
	return fmt.Errorf("%w: game=%s, cause=%v", ErrContextSerializationFailed, game, err)
}

// WrapArtifactWriteFailedError 包装fixture产物写入失败错误
func WrapArtifactWriteFailedError(game, path string, err error) error {
	return fmt.Errorf("%w: game=%s, path=%s, cause=%v", ErrArtifactWriteFailed, game, path, err)
}
