package message

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const (
	StatusOk       = "HTTP/1.1 200 OK"
	StatusNotFound = "HTTP/1.1 404 File Not Found"
)

// NewResponse builds the reply to a parsed request. The resource
// is resolved against dir; any failure to open or read the file
// is answered with the fixed 404 message. No other status is ever
// produced.
func NewResponse(req *Message, dir string) *Message {
	resp := new(Message)
	data, err := os.ReadFile(filepath.Join(dir, req.Resource))
	if err != nil {
		resp.Status = StatusNotFound
		resp.Header = "Connection: close\r\n"
		return resp
	}
	resp.Status = StatusOk
	resp.Header = fmt.Sprintf("Content-Length: %d\r\n", len(data))
	resp.Body = data
	return resp
}

// Marshal serializes the message to wire bytes: status line,
// CRLF, header line, CRLF, then the body and a trailing CRLF when
// a body is present.
func (msg *Message) Marshal() []byte {
	var buf bytes.Buffer
	buf.WriteString(msg.Status)
	buf.Write(crlf)
	buf.WriteString(msg.Header)
	buf.Write(crlf)
	if msg.Body != nil {
		buf.Write(msg.Body)
		buf.Write(crlf)
	}
	return buf.Bytes()
}
