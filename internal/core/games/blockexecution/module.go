package blockexecution

import (
	"go.uber.org/fx"
)

// Module 返回区块执行游戏模块
//
// 向容器提供游戏的证明与执行编排器，并在启动时把客体程序注册到
// 本地后端。两个编排器共享同一个后端句柄。
func Module() fx.Option {
	return fx.Module("game-block-execution",
		fx.Provide(NewProver),
		fx.Provide(NewExecutor),
		fx.Invoke(RegisterGuest),
	)
}
