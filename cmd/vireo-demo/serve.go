package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vireo-ui/vireo/pkg/hostws"
	"github.com/vireo-ui/vireo/pkg/middleware"
	"github.com/vireo-ui/vireo/pkg/reactive"
	"github.com/vireo-ui/vireo/pkg/runtime"
	"github.com/vireo-ui/vireo/pkg/telemetry"
	"github.com/vireo-ui/vireo/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var addr string
	var tick time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo counter over WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr, tick)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "counter increment interval")
	return cmd
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

func serve(addr string, tick time.Duration) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	telemetry.Init()

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus())
	r.Use(middleware.Tracing(middleware.WithRequestFilter(func(req *http.Request) bool {
		return req.URL.Path != "/metrics"
	})))

	r.Get("/", indexHandler)
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		wsHandler(w, req, log, tick)
	})
	r.Handle("/metrics", promhttp.Handler())

	log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}

// wsHandler upgrades the connection and mounts a fresh counter app whose
// host is the remote client. Every state write on the ticker goroutine flows
// through the reactive graph and out as binary patch frames.
func wsHandler(w http.ResponseWriter, req *http.Request, log *slog.Logger, tick time.Duration) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Error("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	telemetry.RecordSessionStart()
	defer telemetry.RecordSessionEnd()

	adapter := hostws.New(conn, hostws.WithLogger(log))
	state := reactive.Wrap(map[string]any{"count": 0})

	counter := &vdom.Component{
		Name: "Counter",
		Setup: func(props *vdom.Props, emit vdom.Emit) vdom.RenderFunc {
			return func() *vdom.VNode {
				return vdom.El("div", vdom.Prop("id", "app"),
					vdom.Textf("count: %v", state.Get("count")),
				)
			}
		},
	}

	app := runtime.CreateApp(counter, adapter, runtime.WithLogger(log))

	_, span := telemetry.Tracer().Start(req.Context(), "demo.mount")
	err = app.Mount(adapter.Root())
	span.End()
	if err != nil {
		log.Error("mount failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	// Drain client frames; a read error means the peer is gone.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("session closed")
			return
		case <-ticker.C:
			n, _ := state.Peek("count").(int)
			state.Set("count", n+1)
			if adapter.Err() != nil {
				return
			}
		}
	}
}

func indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!doctype html>
<html>
<head><title>vireo demo</title></head>
<body>
<h1>vireo demo</h1>
<p>Connect a binary-protocol client to <code>/ws</code> to receive the
patch stream. Prometheus metrics are at <code>/metrics</code>.</p>
</body>
</html>
`))
}
