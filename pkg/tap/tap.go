package tap

import (
	"bytes"
	"encoding/hex"
	"io"
)

// A Tap wraps a reader and keeps a copy of every byte that passes
// through it, so the wire traffic can be dumped after the fact.
type Tap struct {
	rd   io.Reader
	hist bytes.Buffer
}

func New(rd io.Reader) *Tap {
	return &Tap{rd: rd}
}

func (t *Tap) Read(b []byte) (int, error) {
	n, err := t.rd.Read(b)
	t.hist.Write(b[:n])
	return n, err
}

// Dump renders the recorded bytes as a hex dump.
func (t *Tap) Dump() string {
	return hex.Dump(t.hist.Bytes())
}

// Size returns how many bytes have been recorded so far.
func (t *Tap) Size() int {
	return t.hist.Len()
}

func (t *Tap) Reset() {
	t.hist.Reset()
}
