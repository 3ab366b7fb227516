package proving

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
)

// ProvingKey 证明密钥句柄（后端私有状态，类型擦除）
//
// 上层编排器只负责在 Setup 与 Prove 之间传递该句柄，不解释其内容。
type ProvingKey interface{}

// VerifyingKey 验证密钥
//
// Raw 为后端定义的规范序列化，ProgramDigest 标识密钥对应的程序二进制。
// 对固定的程序二进制，后端保证密钥内容稳定。
type VerifyingKey struct {
	// ProgramDigest 程序二进制的SHA-256摘要
	ProgramDigest [32]byte

	// Raw 后端定义的验证密钥序列化
	Raw []byte
}

// Bytes32 返回验证密钥的32字节摘要
//
// 用于在链上fixture中以定长十六进制哈希的形式标识验证密钥。
func (vk *VerifyingKey) Bytes32() common.Hash {
	return common.Hash(sha256.Sum256(vk.Raw))
}

// ProofWithPublicValues 证明产出物
//
// 由后端的一次 Prove 调用产生，返回后归调用方所有且不可变：
// - Mode：证明的表示形式
// - PublicValues：公共值缓冲区（固定二进制布局，由各游戏定义）
// - Proof：后端序列化的证明体
type ProofWithPublicValues struct {
	Mode         ProvingMode
	PublicValues []byte
	Proof        []byte
}

// Bytes 返回原始证明字节（用于链上提交与十六进制导出）
func (p *ProofWithPublicValues) Bytes() []byte {
	return p.Proof
}
