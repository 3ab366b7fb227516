package proving

// ProvingOptions 本地证明后端配置选项
type ProvingOptions struct {
	// === 基础配置 ===
	SetupCacheSize int    `json:"setup_cache_size"` // 按程序摘要缓存的密钥对数量
	OutputDir      string `json:"output_dir"`       // Solidity fixture 默认输出目录

	// === 调试配置 ===
	EnableGnarkLogs bool `json:"enable_gnark_logs"` // 是否保留gnark库自身的日志输出
}

// Config 证明后端配置实现
type Config struct {
	options *ProvingOptions
}

// New 创建证明后端配置实现
func New(userOptions *ProvingOptions) *Config {
	// 1. 先创建完整的默认配置
	options := createDefaultProvingOptions()

	// 2. 如果有用户配置，应用用户配置覆盖默认值
	if userOptions != nil {
		applyUserProvingOptions(options, userOptions)
	}

	return &Config{
		options: options,
	}
}

// Options 返回配置选项
func (c *Config) Options() *ProvingOptions {
	return c.options
}

// createDefaultProvingOptions 创建默认证明配置
func createDefaultProvingOptions() *ProvingOptions {
	return &ProvingOptions{
		SetupCacheSize:  defaultSetupCacheSize,
		OutputDir:       defaultOutputDir,
		EnableGnarkLogs: defaultEnableGnarkLogs,
	}
}

// applyUserProvingOptions 应用用户配置覆盖默认值
func applyUserProvingOptions(options, user *ProvingOptions) {
	if user.SetupCacheSize > 0 {
		options.SetupCacheSize = user.SetupCacheSize
	}
	if user.OutputDir != "" {
		options.OutputDir = user.OutputDir
	}
	options.EnableGnarkLogs = user.EnableGnarkLogs
}
