// Package protocol is the binary codec for streaming host mutations to a
// remote presentation layer.
//
// Nodes are addressed by uint64 handles allocated by the sending side; the
// receiver keeps a handle -> real-node table. Each operation encodes as one
// self-contained frame: a one-byte opcode followed by varint handles and
// length-prefixed strings. Decoding enforces allocation limits so a
// malicious length prefix cannot force a huge allocation.
package protocol
