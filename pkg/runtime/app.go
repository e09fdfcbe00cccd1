package runtime

import (
	"io"
	"log/slog"

	"github.com/vireo-ui/vireo/pkg/host"
	"github.com/vireo-ui/vireo/pkg/vdom"
)

// App couples a root component definition with a host adapter.
type App struct {
	root    *vdom.Component
	adapter host.Adapter
	log     *slog.Logger
	mounted bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger for engine debug output. The engine is silent
// by default.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// CreateApp creates an application around a root component definition and a
// host adapter.
func CreateApp(root *vdom.Component, adapter host.Adapter, opts ...Option) *App {
	a := &App{
		root:    root,
		adapter: adapter,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mount performs the single initial mount of the root component into
// container. Re-renders happen automatically through the reactive graph
// afterwards; there is no explicit update call.
func (a *App) Mount(container host.Node) error {
	if a.mounted {
		return ErrMounted
	}

	e := &engine{adapter: a.adapter, log: a.log}
	root := vdom.Comp(a.root)

	if err := e.patch(nil, root, container); err != nil {
		return err
	}
	a.mounted = true
	a.log.Debug("mounted", "component", a.root.Name)
	return nil
}
