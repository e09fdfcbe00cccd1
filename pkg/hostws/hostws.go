// Package hostws implements the host adapter contract over a WebSocket
// connection. Every operation the engine performs is encoded as one binary
// protocol frame and sent to the client, which maintains the handle -> real
// node mapping on its side. Parent links are tracked locally so ParentNode
// never needs a round trip.
package hostws

import (
	"io"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vireo-ui/vireo/pkg/host"
	"github.com/vireo-ui/vireo/pkg/protocol"
	"github.com/vireo-ui/vireo/pkg/telemetry"
)

// Conn is the connection surface the adapter writes frames to.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
}

// node is the local shadow of a remote host node: a handle plus a parent
// link maintained on Insert.
type node struct {
	id     uint64
	parent *node
}

// Host implements host.Adapter by streaming operations to a remote client.
type Host struct {
	conn Conn
	log  *slog.Logger

	mu     sync.Mutex
	nextID uint64
	root   *node

	// sendErr is the first write failure. Once set, further ops are dropped;
	// the engine keeps its tree consistent and the session owner decides
	// whether to tear down.
	sendErr error
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Host) {
		if log != nil {
			h.log = log
		}
	}
}

// New creates a Host over conn. Handle 0 is reserved for the client's mount
// container, available via Root.
func New(conn Conn, opts ...Option) *Host {
	h := &Host{
		conn: conn,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		root: &node{id: 0},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Root returns the node representing the client's mount container.
func (h *Host) Root() host.Node {
	return h.root
}

// Err returns the first send failure, or nil.
func (h *Host) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sendErr
}

// CreateElement implements host.Adapter.
func (h *Host) CreateElement(tag string) host.Node {
	n := h.alloc()
	h.send(&protocol.Op{Code: protocol.OpCreateElement, Node: n.id, Tag: tag})
	return n
}

// CreateText implements host.Adapter.
func (h *Host) CreateText(text string) host.Node {
	n := h.alloc()
	h.send(&protocol.Op{Code: protocol.OpCreateText, Node: n.id, Value: text})
	return n
}

// SetText implements host.Adapter.
func (h *Host) SetText(hn host.Node, text string) {
	h.send(&protocol.Op{Code: protocol.OpSetText, Node: handleOf(hn), Value: text})
}

// SetElementText implements host.Adapter.
func (h *Host) SetElementText(hn host.Node, text string) {
	h.send(&protocol.Op{Code: protocol.OpSetElementText, Node: handleOf(hn), Value: text})
}

// Insert implements host.Adapter.
func (h *Host) Insert(child, parent, anchor host.Node) {
	c, ok := child.(*node)
	if !ok {
		return
	}
	p, ok := parent.(*node)
	if !ok {
		return
	}
	c.parent = p

	op := &protocol.Op{Code: protocol.OpInsert, Node: c.id, Parent: p.id}
	if a, ok := anchor.(*node); ok && a != nil {
		op.Anchor = a.id
	}
	h.send(op)
}

// PatchProp implements host.Adapter. Event-like keys (the "on" prefix, as in
// onClick) stay server-side: the handler lives in the component's props and
// the client only needs to know the key exists to wire event delivery, so
// the value sent is the key itself rather than the func.
func (h *Host) PatchProp(el host.Node, key string, value any) {
	op := &protocol.Op{Code: protocol.OpPatchProp, Node: handleOf(el), Key: key}
	if isEventKey(key) {
		op.Value = key
	} else {
		op.Value = propString(value)
	}
	h.send(op)
}

// ParentNode implements host.Adapter.
func (h *Host) ParentNode(hn host.Node) host.Node {
	n, ok := hn.(*node)
	if !ok || n.parent == nil {
		return nil
	}
	return n.parent
}

// handleOf extracts the wire handle. Foreign nodes map to the container
// handle, which the client treats as a no-op target.
func handleOf(hn host.Node) uint64 {
	if n, ok := hn.(*node); ok {
		return n.id
	}
	return 0
}

func (h *Host) alloc() *node {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	return &node{id: h.nextID}
}

// send encodes the op and writes it as one binary frame. After the first
// failure all further ops are dropped.
func (h *Host) send(op *protocol.Op) {
	h.mu.Lock()
	if h.sendErr != nil {
		h.mu.Unlock()
		return
	}
	data := protocol.EncodeOp(op)
	err := h.conn.WriteMessage(websocket.BinaryMessage, data)
	if err != nil {
		h.sendErr = err
	}
	h.mu.Unlock()

	if err != nil {
		h.log.Error("host op send failed", "op", op.Code.String(), "error", err)
		telemetry.RecordSendError()
		return
	}

	h.log.Debug("host op sent", "op", op.Code.String(), "node", op.Node)
	telemetry.RecordHostOp(op.Code.String(), len(data))
}
