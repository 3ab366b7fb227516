// Package testutil 提供证明游戏模块测试的辅助工具
//
// 🧪 **测试辅助工具包**
//
// 本包提供测试所需的 Mock 对象和辅助函数，用于简化测试代码编写。
package testutil

import (
	"go.uber.org/zap"

	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// ==================== Mock 对象 ====================

// MockLogger 统一的日志Mock实现
//
// ✅ **设计原则**：最小实现，所有方法返回空值，不记录日志
// 📋 **使用场景**：大多数测试用例，不需要验证日志调用
type MockLogger struct{}

func (m *MockLogger) Debug(msg string)                          {}
func (m *MockLogger) Debugf(format string, args ...interface{}) {}
func (m *MockLogger) Info(msg string)                           {}
func (m *MockLogger) Infof(format string, args ...interface{})  {}
func (m *MockLogger) Warn(msg string)                           {}
func (m *MockLogger) Warnf(format string, args ...interface{})  {}
func (m *MockLogger) Error(msg string)                          {}
func (m *MockLogger) Errorf(format string, args ...interface{}) {}
func (m *MockLogger) Fatal(msg string)                          {}
func (m *MockLogger) Fatalf(format string, args ...interface{}) {}
func (m *MockLogger) With(args ...interface{}) log.Logger       { return m }
func (m *MockLogger) Sync() error                               { return nil }
func (m *MockLogger) GetZapLogger() *zap.Logger                 { return zap.NewNop() }

// MockBackend 证明后端Mock实现
//
// ✅ **设计原则**：每个方法都可通过函数字段覆盖，未覆盖时返回
// 固定的成功结果，便于只关心单条路径的测试。
// 📋 **使用场景**：隔离编排器逻辑，不触发真实的电路编译与证明
type MockBackend struct {
	SetupFunc   func(elf []byte) (proving.ProvingKey, *proving.VerifyingKey, error)
	ExecuteFunc func(elf []byte, stdin *proving.Stdin) ([]byte, *proving.ExecutionReport, error)
	ProveFunc   func(pk proving.ProvingKey, stdin *proving.Stdin, mode proving.ProvingMode) (*proving.ProofWithPublicValues, error)
	VerifyFunc  func(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) error
}

func (m *MockBackend) Setup(elf []byte) (proving.ProvingKey, *proving.VerifyingKey, error) {
	if m.SetupFunc != nil {
		return m.SetupFunc(elf)
	}
	return "mock-pk", &proving.VerifyingKey{Raw: []byte("mock-vk")}, nil
}

func (m *MockBackend) Execute(elf []byte, stdin *proving.Stdin) ([]byte, *proving.ExecutionReport, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(elf, stdin)
	}
	return nil, &proving.ExecutionReport{TotalInstructionCount: 1}, nil
}

func (m *MockBackend) Prove(pk proving.ProvingKey, stdin *proving.Stdin, mode proving.ProvingMode) (*proving.ProofWithPublicValues, error) {
	if m.ProveFunc != nil {
		return m.ProveFunc(pk, stdin, mode)
	}
	return &proving.ProofWithPublicValues{Mode: mode}, nil
}

func (m *MockBackend) Verify(proof *proving.ProofWithPublicValues, vk *proving.VerifyingKey) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(proof, vk)
	}
	return nil
}

// 编译期接口断言
var (
	_ log.Logger      = (*MockLogger)(nil)
	_ proving.Backend = (*MockBackend)(nil)
)
