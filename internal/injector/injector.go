//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scene/internal/runtime"
)

func InitializeScene(path ConfigPath, overrides Overrides) (*runtime.Scene, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
