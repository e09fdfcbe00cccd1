package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1<<32 - 1, 1<<64 - 1}

	for _, v := range values {
		e := NewEncoder()
		e.WriteUvarint(v)

		// Wire format matches encoding/binary's varint.
		want := binary.AppendUvarint(nil, v)
		if !bytes.Equal(e.Bytes(), want) {
			t.Errorf("WriteUvarint(%d) = %x, want %x", v, e.Bytes(), want)
		}

		got, err := NewDecoder(e.Bytes()).ReadUvarint()
		if err != nil {
			t.Fatalf("ReadUvarint(%d) error = %v", v, err)
		}
		if got != v {
			t.Errorf("ReadUvarint = %d, want %d", got, v)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	values := []string{"", "div", "count: 0", "日本語テキスト"}

	for _, s := range values {
		e := NewEncoder()
		e.WriteString(s)

		got, err := NewDecoder(e.Bytes()).ReadString()
		if err != nil {
			t.Fatalf("ReadString(%q) error = %v", s, err)
		}
		if got != s {
			t.Errorf("ReadString = %q, want %q", got, s)
		}
	}
}

func TestDecoderErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(*Decoder) error
		want error
	}{
		{
			name: "byte from empty buffer",
			buf:  nil,
			read: func(d *Decoder) error { _, err := d.ReadByte(); return err },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "truncated varint",
			buf:  []byte{0x80, 0x80},
			read: func(d *Decoder) error { _, err := d.ReadUvarint(); return err },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "varint overflow",
			buf:  bytes.Repeat([]byte{0x80}, 10),
			read: func(d *Decoder) error { _, err := d.ReadUvarint(); return err },
			want: ErrVarintOverflow,
		},
		{
			name: "string longer than buffer",
			buf:  []byte{0x05, 'a', 'b'},
			read: func(d *Decoder) error { _, err := d.ReadString(); return err },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "string length over limit",
			buf:  binary.AppendUvarint(nil, MaxStringLen+1),
			read: func(d *Decoder) error { _, err := d.ReadString(); return err },
			want: ErrStringTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewDecoder(tt.buf))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncoderReset(t *testing.T) {
	e := NewEncoder()
	e.WriteString("first")
	if e.Len() == 0 {
		t.Fatal("Len() = 0 after write")
	}

	e.Reset()
	if e.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", e.Len())
	}

	e.WriteByte(0x01)
	if got := e.Bytes(); len(got) != 1 || got[0] != 0x01 {
		t.Errorf("Bytes() after Reset+write = %x", got)
	}
}

func TestDecoderRemaining(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03})
	if d.Remaining() != 3 {
		t.Fatalf("Remaining = %d, want 3", d.Remaining())
	}
	if _, err := d.ReadByte(); err != nil {
		t.Fatal(err)
	}
	if d.Remaining() != 2 {
		t.Errorf("Remaining after one read = %d, want 2", d.Remaining())
	}
}
