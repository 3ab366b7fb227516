package local

import (
	"errors"
	"fmt"
)

// ============================================================================
//                            本地证明后端错误定义
// ============================================================================

var (
	// ErrGuestNotRegistered 客体程序未注册错误
	ErrGuestNotRegistered = errors.New("guest program not registered")

	// ErrGuestAlreadyRegistered 客体程序重复注册错误
	ErrGuestAlreadyRegistered = errors.New("guest program already registered")

	// ErrGuestTrap 客体程序运行时陷入错误
	ErrGuestTrap = errors.New("guest program trapped")

	// ErrInvalidProvingKey 无效证明密钥句柄错误
	ErrInvalidProvingKey = errors.New("invalid proving key handle")

	// ErrMalformedProof 证明体格式非法错误
	ErrMalformedProof = errors.New("malformed proof body")

	// ErrProgramMismatch 程序摘要不匹配错误
	ErrProgramMismatch = errors.New("program digest mismatch")

	// ErrCommitmentMismatch 轨迹承诺不匹配错误
	ErrCommitmentMismatch = errors.New("trace commitment mismatch")

	// ErrMalformedVerifyingKey 验证密钥格式非法错误
	ErrMalformedVerifyingKey = errors.New("malformed verifying key")
)

// ============================================================================
//                               错误包装函数
// ============================================================================

// WrapGuestNotRegisteredError 包装客体程序未注册错误
func WrapGuestNotRegisteredError(digest [32]byte) error {
	return fmt.Errorf("%w: program=%x", ErrGuestNotRegistered, digest[:8])
}

// WrapGuestTrapError 包装客体程序陷入错误
func WrapGuestTrapError(digest [32]byte, err error) error {
	return fmt.Errorf("%w: program=%x, cause=%v", ErrGuestTrap, digest[:8], err)
}

// WrapMalformedProofError 包装证明体格式非法错误
func WrapMalformedProofError(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedProof, reason)
}
