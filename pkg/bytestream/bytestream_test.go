package bytestream

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_DrainAfterClose(t *testing.T) {
	st := New()
	_, err := st.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, st.Close())

	data, err := io.ReadAll(st)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = st.Write([]byte("x"))
	assert.Equal(t, io.ErrClosedPipe, err)
}

func TestStream_BlockedReaderSeesWrites(t *testing.T) {
	st := New()
	go func() {
		st.Write([]byte("one "))
		st.Write([]byte("two"))
		st.Close()
	}()

	data, err := io.ReadAll(st)
	assert.NoError(t, err)
	assert.Equal(t, "one two", string(data))
}

func TestStream_ShortReads(t *testing.T) {
	st := New()
	st.Write([]byte("abcdef"))
	st.Close()

	chunk := make([]byte, 4)
	n, err := st.Read(chunk)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", string(chunk[:n]))

	n, err = st.Read(chunk)
	assert.NoError(t, err)
	assert.Equal(t, "ef", string(chunk[:n]))

	_, err = st.Read(chunk)
	assert.Equal(t, io.EOF, err)
}
