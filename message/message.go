package message

import "bytes"

var (
	crlf       = []byte("\r\n")
	markerLine = []byte("HTTP/1.1\r\n")
	hostPrefix = []byte("Host: ")
)

// A Message is one HTTP message, request or response. Fields are
// filled in one at a time by the parser or the response builder
// and belong exclusively to the message. On requests Header holds
// the Host value; on responses it holds the full header line with
// its trailing CRLF.
type Message struct {
	Method   Method
	Status   string
	Resource string
	Header   string
	Body     []byte
}

func (msg *Message) BodyLen() int { return len(msg.Body) }

// Complete reports whether buf holds enough bytes to parse a full
// request. Each scan picks up where the previous match ended: the
// method token, then the version marker with its CRLF as one
// adjacent token, then the host field, then the CRLF ending the
// host value. Any missing element means more bytes are needed, so
// the check is safe on partial data and can be re-run after every
// receive.
func Complete(buf []byte) bool {
	_, pos := findMethod(buf)
	if pos < 0 {
		return false
	}
	rest := buf[pos:]
	i := bytes.Index(rest, markerLine)
	if i < 0 {
		return false
	}
	rest = rest[i+len(markerLine):]
	j := bytes.Index(rest, hostPrefix)
	if j < 0 {
		return false
	}
	rest = rest[j+len(hostPrefix):]
	return bytes.Contains(rest, crlf)
}

// Unmarshal extracts the request fields from buf, which must
// already satisfy Complete. The resource runs from the first '/'
// to the next space; the host from after "Host: " to the next
// CRLF. Returns the offset just past the host line so callers can
// trim the consumed bytes.
func (msg *Message) Unmarshal(buf []byte) int {
	msg.Method = LookupMethod(buf)

	start := bytes.IndexByte(buf, '/')
	end := bytes.IndexByte(buf[start:], ' ')
	if end < 0 {
		end = len(buf) - start
	}
	msg.Resource = string(buf[start : start+end])

	h := bytes.Index(buf, hostPrefix) + len(hostPrefix)
	hend := bytes.Index(buf[h:], crlf)
	msg.Header = string(buf[h : h+hend])
	return h + hend + len(crlf)
}
