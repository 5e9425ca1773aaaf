package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// trickleWriter accepts a single byte per call, the worst legal
// partial-send behavior.
type trickleWriter struct {
	wrote bytes.Buffer
}

func (w *trickleWriter) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	w.wrote.WriteByte(b[0])
	return 1, nil
}

func TestSendAll_PartialWrites(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}

	var w trickleWriter
	assert.NoError(t, SendAll(&w, data))
	assert.Equal(t, data, w.wrote.Bytes())
}

type brokenWriter struct {
	accept int
}

func (w *brokenWriter) Write(b []byte) (int, error) {
	if w.accept <= 0 {
		return 0, errors.New("broken pipe")
	}
	n := min(w.accept, len(b))
	w.accept -= n
	return n, nil
}

func TestSendAll_Error(t *testing.T) {
	w := &brokenWriter{accept: 10}
	err := SendAll(w, make([]byte, 64))
	assert.Error(t, err)
}

func TestSendAll_Empty(t *testing.T) {
	var w trickleWriter
	assert.NoError(t, SendAll(&w, nil))
	assert.Zero(t, w.wrote.Len())
}
