package bytestream

import (
	"bytes"
	"io"
	"sync"
)

// A Stream is an in-memory byte pipe with a single writer and a
// single reader. Reads block until bytes are available or the
// stream is closed; a closed stream still drains its buffered
// bytes before reporting io.EOF.
type Stream struct {
	mu     sync.Mutex
	cv     *sync.Cond
	buf    bytes.Buffer
	closed bool
}

func New() *Stream {
	st := new(Stream)
	st.cv = sync.NewCond(&st.mu)
	return st
}

func (st *Stream) Write(data []byte) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return 0, io.ErrClosedPipe
	}
	n, err := st.buf.Write(data)
	st.cv.Signal()
	return n, err
}

func (st *Stream) Read(data []byte) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for !st.closed && st.buf.Len() == 0 {
		st.cv.Wait()
	}
	if st.buf.Len() > 0 {
		return st.buf.Read(data)
	}
	return 0, io.EOF
}

// Close marks the write side done and wakes a blocked reader.
func (st *Stream) Close() error {
	st.mu.Lock()
	st.closed = true
	st.mu.Unlock()
	st.cv.Signal()
	return nil
}
