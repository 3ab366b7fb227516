package proving

// 证明后端配置默认值
const (
	// defaultSetupCacheSize 密钥对缓存容量设为8
	// 原因：仓库内游戏数量有限，单个程序的setup代价高（电路编译+可信设置），
	// 小容量LRU即可覆盖全部游戏并避免重复派生
	defaultSetupCacheSize = 8

	// defaultOutputDir Solidity fixture 默认输出目录
	// 原因：与链上验证合约的测试夹具目录保持一致
	defaultOutputDir = "contracts"

	// defaultEnableGnarkLogs 默认禁用gnark库日志
	// 原因：gnark在编译与证明期间输出大量调试信息，会污染证明生命周期日志
	defaultEnableGnarkLogs = false
)
