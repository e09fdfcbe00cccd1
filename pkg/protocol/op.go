package protocol

import "fmt"

// OpCode identifies one host mutation.
type OpCode uint8

const (
	OpCreateElement  OpCode = 0x01 // node, tag
	OpCreateText     OpCode = 0x02 // node, value
	OpSetText        OpCode = 0x03 // node, value
	OpSetElementText OpCode = 0x04 // node, value
	OpInsert         OpCode = 0x05 // node, parent, anchor (0 = append)
	OpPatchProp      OpCode = 0x06 // node, key, value
)

// String returns the string representation of the OpCode.
func (c OpCode) String() string {
	switch c {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetText:
		return "SetText"
	case OpSetElementText:
		return "SetElementText"
	case OpInsert:
		return "Insert"
	case OpPatchProp:
		return "PatchProp"
	default:
		return "Unknown"
	}
}

// Op is one host mutation addressed by node handle. Handle 0 is reserved for
// the client's mount container (and, in the Anchor slot, for "append").
type Op struct {
	Code   OpCode
	Node   uint64 // target: the created node, or the node being mutated
	Parent uint64 // Insert only
	Anchor uint64 // Insert only; 0 means append
	Tag    string // CreateElement only
	Key    string // PatchProp only
	Value  string // CreateText, SetText, SetElementText, PatchProp
}

// EncodeOp encodes op as a single self-contained frame.
func EncodeOp(op *Op) []byte {
	e := NewEncoder()
	EncodeOpTo(e, op)
	return e.Bytes()
}

// EncodeOpTo encodes op using the provided encoder.
func EncodeOpTo(e *Encoder, op *Op) {
	e.WriteByte(byte(op.Code))
	e.WriteUvarint(op.Node)

	switch op.Code {
	case OpCreateElement:
		e.WriteString(op.Tag)
	case OpCreateText, OpSetText, OpSetElementText:
		e.WriteString(op.Value)
	case OpInsert:
		e.WriteUvarint(op.Parent)
		e.WriteUvarint(op.Anchor)
	case OpPatchProp:
		e.WriteString(op.Key)
		e.WriteString(op.Value)
	}
}

// DecodeOp decodes a single op frame.
func DecodeOp(data []byte) (*Op, error) {
	d := NewDecoder(data)
	return DecodeOpFrom(d)
}

// DecodeOpFrom decodes one op from a decoder.
func DecodeOpFrom(d *Decoder) (*Op, error) {
	code, err := d.ReadByte()
	if err != nil {
		return nil, err
	}

	op := &Op{Code: OpCode(code)}
	if op.Node, err = d.ReadUvarint(); err != nil {
		return nil, err
	}

	switch op.Code {
	case OpCreateElement:
		op.Tag, err = d.ReadString()
	case OpCreateText, OpSetText, OpSetElementText:
		op.Value, err = d.ReadString()
	case OpInsert:
		if op.Parent, err = d.ReadUvarint(); err != nil {
			return nil, err
		}
		op.Anchor, err = d.ReadUvarint()
	case OpPatchProp:
		if op.Key, err = d.ReadString(); err != nil {
			return nil, err
		}
		op.Value, err = d.ReadString()
	default:
		return nil, fmt.Errorf("protocol: unknown opcode 0x%02x", code)
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}
