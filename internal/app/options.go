package app

import (
	"encoding/json"
	"fmt"
	"os"

	logconfig "github.com/fuellabs/fuel-proving-games/internal/config/log"
	provingconfig "github.com/fuellabs/fuel-proving-games/internal/config/proving"
)

// AppOptions 应用级用户配置
//
// 🔧 零值陷阱处理说明：
// 两个配置段都是指针，nil 表示"用户未设置该段"，各配置包将用
// 自己的默认值补全；非nil的段内再按字段做默认值覆盖。
type AppOptions struct {
	Log     *logconfig.LogOptions         `json:"log"`
	Proving *provingconfig.ProvingOptions `json:"proving"`
}

// LoadOptions 从JSON配置文件加载应用配置
//
// 文件不存在不是错误：返回空选项，全部字段走系统默认值。
// 文件存在但无法解析时返回错误，拒绝静默使用默认值启动。
func LoadOptions(path string) (*AppOptions, error) {
	options := &AppOptions{}
	if path == "" {
		return options, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return options, nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := json.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return options, nil
}
