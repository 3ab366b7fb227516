package local

import (
	"bytes"
	"fmt"
	"time"

	// 基础设施
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"

	// gnark ZK库
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"
)

// ============================================================================
// 证明方案抽象
// ============================================================================
//
// 🎯 **目的**：
//   - 抽象证明方案接口，统一Groth16与PlonK两种包装方案
//   - 本地后端按ProvingMode选择方案，方案之间互不感知
//
// 📋 **设计原则**：
//   - 方案抽象：定义统一的证明方案接口
//   - 类型擦除：密钥与证明对上层保持不透明
//
// ============================================================================

// provingScheme 证明方案接口
type provingScheme interface {
	// SchemeName 返回方案名称
	SchemeName() string

	// GetBuilder 获取电路构建器
	GetBuilder() frontend.NewBuilder

	// Setup 生成可信设置（proving key和verifying key）
	Setup(compiledCircuit constraint.ConstraintSystem) (interface{}, interface{}, error)

	// Prove 生成证明
	Prove(compiledCircuit constraint.ConstraintSystem, provingKey interface{}, w witness.Witness) (interface{}, error)

	// Verify 验证证明
	Verify(proof interface{}, verifyingKey interface{}, publicWitness witness.Witness) error

	// SerializeProof 序列化证明
	SerializeProof(proof interface{}) ([]byte, error)

	// DeserializeProof 反序列化证明
	DeserializeProof(data []byte, curveID ecc.ID) (interface{}, error)

	// SerializeVerifyingKey 序列化验证密钥
	SerializeVerifyingKey(vk interface{}) ([]byte, error)

	// DeserializeVerifyingKey 反序列化验证密钥
	DeserializeVerifyingKey(data []byte, curveID ecc.ID) (interface{}, error)
}

// groth16Scheme Groth16证明方案实现
type groth16Scheme struct {
	logger log.Logger
}

// newGroth16Scheme 创建Groth16证明方案
func newGroth16Scheme(logger log.Logger) *groth16Scheme {
	return &groth16Scheme{logger: logger}
}

// SchemeName 返回方案名称
func (s *groth16Scheme) SchemeName() string {
	return "groth16"
}

// GetBuilder 获取电路构建器
func (s *groth16Scheme) GetBuilder() frontend.NewBuilder {
	return r1cs.NewBuilder
}

// Setup 生成可信设置
func (s *groth16Scheme) Setup(compiledCircuit constraint.ConstraintSystem) (interface{}, interface{}, error) {
	start := time.Now()
	pk, vk, err := groth16.Setup(compiledCircuit)
	if err != nil {
		return nil, nil, fmt.Errorf("Groth16 Setup失败: %w", err)
	}
	s.logger.Debugf("groth16 setup complete: constraints=%d, elapsed=%s", compiledCircuit.GetNbConstraints(), time.Since(start))
	return pk, vk, nil
}

// Prove 生成证明
func (s *groth16Scheme) Prove(compiledCircuit constraint.ConstraintSystem, provingKey interface{}, w witness.Witness) (interface{}, error) {
	groth16Pk, ok := provingKey.(groth16.ProvingKey)
	if !ok {
		return nil, fmt.Errorf("无效的Groth16证明密钥类型")
	}

	start := time.Now()
	proof, err := groth16.Prove(compiledCircuit, groth16Pk, w)
	if err != nil {
		return nil, fmt.Errorf("Groth16 Prove失败: %w", err)
	}
	s.logger.Debugf("groth16 prove complete: elapsed=%s", time.Since(start))
	return proof, nil
}

// Verify 验证证明
func (s *groth16Scheme) Verify(proof interface{}, verifyingKey interface{}, publicWitness witness.Witness) error {
	groth16Proof, ok := proof.(groth16.Proof)
	if !ok {
		return fmt.Errorf("无效的Groth16证明类型")
	}

	vk, ok := verifyingKey.(groth16.VerifyingKey)
	if !ok {
		return fmt.Errorf("无效的Groth16验证密钥类型")
	}

	return groth16.Verify(groth16Proof, vk, publicWitness)
}

// SerializeProof 序列化证明
func (s *groth16Scheme) SerializeProof(proof interface{}) ([]byte, error) {
	groth16Proof, ok := proof.(groth16.Proof)
	if !ok {
		return nil, fmt.Errorf("无效的Groth16证明类型")
	}

	var buf bytes.Buffer
	if _, err := groth16Proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("序列化Groth16证明失败: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeProof 反序列化证明
func (s *groth16Scheme) DeserializeProof(data []byte, curveID ecc.ID) (interface{}, error) {
	proof := groth16.NewProof(curveID)
	if _, err := proof.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("反序列化Groth16证明失败: %w", err)
	}
	return proof, nil
}

// SerializeVerifyingKey 序列化验证密钥
func (s *groth16Scheme) SerializeVerifyingKey(vk interface{}) ([]byte, error) {
	groth16Vk, ok := vk.(groth16.VerifyingKey)
	if !ok {
		return nil, fmt.Errorf("无效的Groth16验证密钥类型")
	}

	var buf bytes.Buffer
	if _, err := groth16Vk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("序列化Groth16验证密钥失败: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeVerifyingKey 反序列化验证密钥
func (s *groth16Scheme) DeserializeVerifyingKey(data []byte, curveID ecc.ID) (interface{}, error) {
	vk := groth16.NewVerifyingKey(curveID)
	if _, err := vk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("反序列化Groth16验证密钥失败: %w", err)
	}
	return vk, nil
}

// plonkScheme PlonK证明方案实现
type plonkScheme struct {
	logger log.Logger
}

// newPlonkScheme 创建PlonK证明方案
func newPlonkScheme(logger log.Logger) *plonkScheme {
	return &plonkScheme{logger: logger}
}

// SchemeName 返回方案名称
func (s *plonkScheme) SchemeName() string {
	return "plonk"
}

// GetBuilder 获取电路构建器
func (s *plonkScheme) GetBuilder() frontend.NewBuilder {
	return scs.NewBuilder
}

// Setup 生成可信设置
//
// PlonK需要SRS参数；本地后端面向开发与测试，使用unsafekzg按电路
// 约束规模生成测试SRS。生产部署应替换为正式的SRS仪式产物。
func (s *plonkScheme) Setup(compiledCircuit constraint.ConstraintSystem) (interface{}, interface{}, error) {
	start := time.Now()
	srs, srsLagrange, err := unsafekzg.NewSRS(compiledCircuit)
	if err != nil {
		return nil, nil, fmt.Errorf("PlonK SRS生成失败: %w", err)
	}

	pk, vk, err := plonk.Setup(compiledCircuit, srs, srsLagrange)
	if err != nil {
		return nil, nil, fmt.Errorf("PlonK Setup失败: %w", err)
	}
	s.logger.Debugf("plonk setup complete: constraints=%d, elapsed=%s", compiledCircuit.GetNbConstraints(), time.Since(start))
	return pk, vk, nil
}

// Prove 生成证明
func (s *plonkScheme) Prove(compiledCircuit constraint.ConstraintSystem, provingKey interface{}, w witness.Witness) (interface{}, error) {
	plonkPk, ok := provingKey.(plonk.ProvingKey)
	if !ok {
		return nil, fmt.Errorf("无效的PlonK证明密钥类型")
	}

	start := time.Now()
	proof, err := plonk.Prove(compiledCircuit, plonkPk, w)
	if err != nil {
		return nil, fmt.Errorf("PlonK Prove失败: %w", err)
	}
	s.logger.Debugf("plonk prove complete: elapsed=%s", time.Since(start))
	return proof, nil
}

// Verify 验证证明
func (s *plonkScheme) Verify(proof interface{}, verifyingKey interface{}, publicWitness witness.Witness) error {
	plonkProof, ok := proof.(plonk.Proof)
	if !ok {
		return fmt.Errorf("无效的PlonK证明类型")
	}

	vk, ok := verifyingKey.(plonk.VerifyingKey)
	if !ok {
		return fmt.Errorf("无效的PlonK验证密钥类型")
	}

	return plonk.Verify(plonkProof, vk, publicWitness)
}

// SerializeProof 序列化证明
func (s *plonkScheme) SerializeProof(proof interface{}) ([]byte, error) {
	plonkProof, ok := proof.(plonk.Proof)
	if !ok {
		return nil, fmt.Errorf("无效的PlonK证明类型")
	}

	var buf bytes.Buffer
	if _, err := plonkProof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("序列化PlonK证明失败: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeProof 反序列化证明
func (s *plonkScheme) DeserializeProof(data []byte, curveID ecc.ID) (interface{}, error) {
	proof := plonk.NewProof(curveID)
	if _, err := proof.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("反序列化PlonK证明失败: %w", err)
	}
	return proof, nil
}

// SerializeVerifyingKey 序列化验证密钥
func (s *plonkScheme) SerializeVerifyingKey(vk interface{}) ([]byte, error) {
	plonkVk, ok := vk.(plonk.VerifyingKey)
	if !ok {
		return nil, fmt.Errorf("无效的PlonK验证密钥类型")
	}

	var buf bytes.Buffer
	if _, err := plonkVk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("序列化PlonK验证密钥失败: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeVerifyingKey 反序列化验证密钥
func (s *plonkScheme) DeserializeVerifyingKey(data []byte, curveID ecc.ID) (interface{}, error) {
	vk := plonk.NewVerifyingKey(curveID)
	if _, err := vk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("反序列化PlonK验证密钥失败: %w", err)
	}
	return vk, nil
}
