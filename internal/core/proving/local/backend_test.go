package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	provingconfig "github.com/fuellabs/fuel-proving-games/internal/config/proving"
	"github.com/fuellabs/fuel-proving-games/internal/core/testutil"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// testELF 测试用程序二进制
var testELF = []byte("\x7fELF test-program")

// echoGuest 将输入倒序作为公共值提交的测试客体
func echoGuest() Guest {
	return GuestFunc(func(input []byte) ([]byte, *proving.ExecutionReport, error) {
		out := make([]byte, len(input))
		for i, b := range input {
			out[len(input)-1-i] = b
		}
		report := &proving.ExecutionReport{
			TotalInstructionCount:  uint64(len(input)) * 10,
			TotalSyscallCount:      2,
			TouchedMemoryAddresses: uint64(len(input)),
		}
		return out, report, nil
	})
}

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New(provingconfig.New(nil), &testutil.MockLogger{})
	require.NoError(t, err)
	require.NoError(t, backend.RegisterGuest(testELF, echoGuest()))
	return backend
}

func stdinWith(data []byte) *proving.Stdin {
	stdin := proving.NewStdin()
	stdin.WriteSlice(data)
	return stdin
}

// ==================== 客体注册 ====================

// TestRegisterGuest_DuplicateRejected 测试重复注册同一程序
func TestRegisterGuest_DuplicateRejected(t *testing.T) {
	backend := newTestBackend(t)

	err := backend.RegisterGuest(testELF, echoGuest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGuestAlreadyRegistered)
}

// TestExecute_UnknownProgram 测试未注册程序的执行
func TestExecute_UnknownProgram(t *testing.T) {
	backend := newTestBackend(t)

	_, _, err := backend.Execute([]byte("unknown-elf"), stdinWith([]byte("x")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGuestNotRegistered)
}

// TestExecute_ReturnsGuestOutput 测试执行返回客体的公共值与报告
func TestExecute_ReturnsGuestOutput(t *testing.T) {
	backend := newTestBackend(t)

	pv, report, err := backend.Execute(testELF, stdinWith([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, []byte("cba"), pv)
	assert.Equal(t, uint64(30), report.TotalInstructionCount)
}

// ==================== Setup ====================

// TestSetup_UnknownProgram 测试未注册程序的setup
func TestSetup_UnknownProgram(t *testing.T) {
	backend := newTestBackend(t)

	_, _, err := backend.Setup([]byte("unknown-elf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGuestNotRegistered)
}

// TestSetup_CachesKeyPairPerProgram 测试同一程序的setup结果被缓存
func TestSetup_CachesKeyPairPerProgram(t *testing.T) {
	backend := newTestBackend(t)

	pk1, vk1, err := backend.Setup(testELF)
	require.NoError(t, err)
	pk2, vk2, err := backend.Setup(testELF)
	require.NoError(t, err)

	// 缓存命中：两次返回同一句柄与同一密钥
	assert.Same(t, pk1, pk2)
	assert.Same(t, vk1, vk2)
}

// ==================== Core模式 ====================

// TestProveCore_Roundtrip 测试Core模式的证明与复算验证
func TestProveCore_Roundtrip(t *testing.T) {
	backend := newTestBackend(t)

	pk, vk, err := backend.Setup(testELF)
	require.NoError(t, err)

	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModeCore)
	require.NoError(t, err)
	assert.Equal(t, proving.ModeCore, proof.Mode)
	assert.Equal(t, []byte("ssentiw"), proof.PublicValues)
	assert.Len(t, proof.Proof, coreProofSize)

	require.NoError(t, backend.Verify(proof, vk))
}

// TestVerifyCore_TamperedPublicValues 测试公共值被篡改后的验证失败
func TestVerifyCore_TamperedPublicValues(t *testing.T) {
	backend := newTestBackend(t)

	pk, vk, err := backend.Setup(testELF)
	require.NoError(t, err)
	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModeCore)
	require.NoError(t, err)

	proof.PublicValues[0] ^= 0xff
	assert.Error(t, backend.Verify(proof, vk))
}

// TestVerifyCore_TamperedCommitment 测试承诺被篡改后的验证失败
func TestVerifyCore_TamperedCommitment(t *testing.T) {
	backend := newTestBackend(t)

	pk, vk, err := backend.Setup(testELF)
	require.NoError(t, err)
	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModeCore)
	require.NoError(t, err)

	proof.Proof[coreProofSize-1] ^= 0x01
	err = backend.Verify(proof, vk)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitmentMismatch)
}

// TestVerifyCore_WrongProgram 测试证明与验证密钥的程序不匹配
func TestVerifyCore_WrongProgram(t *testing.T) {
	backend := newTestBackend(t)
	otherELF := []byte("\x7fELF other-program")
	require.NoError(t, backend.RegisterGuest(otherELF, echoGuest()))

	pk, _, err := backend.Setup(testELF)
	require.NoError(t, err)
	_, otherVK, err := backend.Setup(otherELF)
	require.NoError(t, err)

	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModeCore)
	require.NoError(t, err)

	err = backend.Verify(proof, otherVK)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProgramMismatch)
}

// TestVerifyCore_MalformedProofBody 测试证明体长度非法
func TestVerifyCore_MalformedProofBody(t *testing.T) {
	backend := newTestBackend(t)
	_, vk, err := backend.Setup(testELF)
	require.NoError(t, err)

	proof := &proving.ProofWithPublicValues{Mode: proving.ModeCore, Proof: []byte("short")}
	err = backend.Verify(proof, vk)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedProof)
}

// ==================== 包装模式 ====================

// TestProveGroth16_Roundtrip 测试Groth16包装证明的端到端往返
func TestProveGroth16_Roundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping circuit setup in short mode")
	}
	backend := newTestBackend(t)

	pk, vk, err := backend.Setup(testELF)
	require.NoError(t, err)

	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModeGroth16)
	require.NoError(t, err)
	assert.Equal(t, proving.ModeGroth16, proof.Mode)
	assert.Greater(t, len(proof.Proof), 32)

	require.NoError(t, backend.Verify(proof, vk))
}

// TestProvePlonk_Roundtrip 测试PlonK包装证明的端到端往返
func TestProvePlonk_Roundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping circuit setup in short mode")
	}
	backend := newTestBackend(t)

	pk, vk, err := backend.Setup(testELF)
	require.NoError(t, err)

	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModePlonk)
	require.NoError(t, err)
	assert.Equal(t, proving.ModePlonk, proof.Mode)

	require.NoError(t, backend.Verify(proof, vk))
}

// TestVerifyWrapped_TamperedCommitment 测试包装证明承诺被篡改后的验证失败
func TestVerifyWrapped_TamperedCommitment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping circuit setup in short mode")
	}
	backend := newTestBackend(t)

	pk, vk, err := backend.Setup(testELF)
	require.NoError(t, err)
	proof, err := backend.Prove(pk, stdinWith([]byte("witness")), proving.ModeGroth16)
	require.NoError(t, err)

	proof.Proof[0] ^= 0x01
	assert.Error(t, backend.Verify(proof, vk))
}

// TestProve_InvalidProvingKey 测试非本后端的证明密钥句柄
func TestProve_InvalidProvingKey(t *testing.T) {
	backend := newTestBackend(t)

	_, err := backend.Prove("not-a-key", stdinWith([]byte("x")), proving.ModeCore)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProvingKey)
}

// ==================== 验证密钥段编码 ====================

// TestVKSections_Roundtrip 测试验证密钥段的编码与取出
func TestVKSections_Roundtrip(t *testing.T) {
	raw := encodeVKSections([]byte("groth16-vk"), []byte("plonk-vk"))

	s0, err := vkSection(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("groth16-vk"), s0)

	s1, err := vkSection(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("plonk-vk"), s1)

	_, err = vkSection(raw, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedVerifyingKey)
}

// TestVKSections_Truncated 测试截断的验证密钥序列化
func TestVKSections_Truncated(t *testing.T) {
	raw := encodeVKSections([]byte("groth16-vk"))

	_, err := vkSection(raw[:len(raw)-3], 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedVerifyingKey)
}
