package site

import (
	"go.uber.org/fx"

	"github.com/tarush10000/Sooru-Demo/internal/content"
)

var Module = fx.Module("site",
	fx.Provide(
		content.Load,
		NewHandler,
		NewRouter,
	),
	fx.Invoke(RegisterRoutes),
)
