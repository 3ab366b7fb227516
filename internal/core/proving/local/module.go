package local

import (
	"go.uber.org/fx"

	provingconfig "github.com/fuellabs/fuel-proving-games/internal/config/proving"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/infrastructure/log"
	"github.com/fuellabs/fuel-proving-games/pkg/interfaces/proving"
)

// ModuleParams 定义本地后端模块的依赖参数
type ModuleParams struct {
	fx.In

	Options *provingconfig.ProvingOptions `optional:"true"` // 用户证明选项（缺省时用系统默认值）
	Logger  log.Logger
}

// ModuleOutput 定义本地后端模块的输出结构
type ModuleOutput struct {
	fx.Out

	Backend    *Backend              // 本地后端具体类型（供客体注册使用）
	ProvingAPI proving.Backend       // 后端接口（供编排器使用）
	Config     *provingconfig.Config // 证明配置（供CLI等读取输出目录）
}

// Module 返回本地证明后端模块
func Module() fx.Option {
	return fx.Module("proving-local",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 提供本地证明后端
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	config := provingconfig.New(params.Options)

	backend, err := New(config, params.Logger)
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		Backend:    backend,
		ProvingAPI: backend,
		Config:     config,
	}, nil
}
