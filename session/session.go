package session

import (
	"io"

	"github.com/cmcquinn/http-server/message"
)

// DefaultRecvLen is the receive size used when the entry point
// doesn't override it.
const DefaultRecvLen = 4

// Config is built once by the acceptor before it starts accepting
// and shared read-only by every worker after that, so no locking
// is needed around it.
type Config struct {
	RecvLen int    // bytes asked for per receive call
	Root    string // directory resources are resolved against
}

// A Session drives one connection end to end: reassemble a
// request from the stream, parse it, answer it, and go back to
// receiving until the peer goes away. The receive buffer belongs
// to this session alone.
type Session struct {
	rw  io.ReadWriter
	cfg *Config
}

func New(rw io.ReadWriter, cfg *Config) *Session {
	return &Session{rw: rw, cfg: cfg}
}

// receive pulls chunks off the stream until the accumulated
// buffer holds a complete request. Iteration i grows the buffer
// to capacity (i+1)*RecvLen+1 and reads at most RecvLen bytes
// appended after the ones already held, so received bytes stay
// contiguous even when a read comes up short. The +1 was the C
// original's slot for a string terminator; the slot stays unused
// here but the growth schedule is kept.
//
// A client that never completes a request grows this buffer
// without bound. That hazard is part of the observed behavior and
// is deliberately not capped.
func (sess *Session) receive() ([]byte, error) {
	recvLen := sess.cfg.RecvLen
	if recvLen <= 0 {
		// A zero-size region would make every read return
		// (0, nil) and spin the loop hot forever.
		recvLen = DefaultRecvLen
	}

	var buf []byte
	for i := 0; ; i++ {
		want := (i+1)*recvLen + 1
		if cap(buf) < want {
			grown := make([]byte, len(buf), want)
			copy(grown, buf)
			buf = grown
		}
		region := buf[len(buf) : len(buf)+recvLen]
		n, err := sess.rw.Read(region)
		buf = buf[:len(buf)+n]
		if n > 0 && message.Complete(buf) {
			return buf, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Serve processes requests on the connection strictly one after
// another until the peer closes, a read fails, or a send fails.
// A close between requests is the normal end of a connection, not
// an error. Each request starts from an empty buffer; bytes read
// past the end of the previous request are dropped with it.
func (sess *Session) Serve() error {
	for {
		buf, err := sess.receive()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req message.Message
		req.Unmarshal(buf)

		resp := message.NewResponse(&req, sess.cfg.Root)
		if err := SendAll(sess.rw, resp.Marshal()); err != nil {
			return err
		}
	}
}
