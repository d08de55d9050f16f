package config

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that supplies a named *Accessor bound to
// filename. The name is used as both the module name and the DI named tag.
// The accessor is loaded eagerly in an OnStart hook so that a missing or
// malformed file fails application start instead of the first query.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, filename string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() *Accessor {
					return New(filename, opts...)
				},
				fx.ResultTags(tag),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, accessor *Accessor) {
					lifecycle.Append(fx.Hook{
						OnStart: func(_ context.Context) error {
							return accessor.Load()
						},
						OnStop: nil,
					})
				},
				fx.ParamTags("", tag),
			),
		),
	)
}
