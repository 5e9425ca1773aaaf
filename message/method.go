package message

import "bytes"

type Method uint8

const (
	MethodNone Method = iota
	MethodGet
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
	MethodPatch
)

// methodTokens is consulted strictly in table order. Matching is
// a plain substring search over the whole buffer, so a verb
// hiding inside the resource (say "/GETTYSBURG.html" on a DELETE)
// can decide the method before the real token is ever considered.
// That is the observed behavior and it is kept as-is.
var methodTokens = []struct {
	method Method
	token  []byte
}{
	{MethodGet, []byte("GET")},
	{MethodHead, []byte("HEAD")},
	{MethodPost, []byte("POST")},
	{MethodPut, []byte("PUT")},
	{MethodDelete, []byte("DELETE")},
	{MethodConnect, []byte("CONNECT")},
	{MethodOptions, []byte("OPTIONS")},
	{MethodTrace, []byte("TRACE")},
	{MethodPatch, []byte("PATCH")},
}

// LookupMethod returns the first method in the table whose token
// appears anywhere in buf, or MethodNone.
func LookupMethod(buf []byte) Method {
	m, _ := findMethod(buf)
	return m
}

// findMethod also reports where the matched token ends, so later
// scans can chain from past the match.
func findMethod(buf []byte) (Method, int) {
	for _, entry := range methodTokens {
		if i := bytes.Index(buf, entry.token); i >= 0 {
			return entry.method, i + len(entry.token)
		}
	}
	return MethodNone, -1
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodHead:
		return "HEAD"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodConnect:
		return "CONNECT"
	case MethodOptions:
		return "OPTIONS"
	case MethodTrace:
		return "TRACE"
	case MethodPatch:
		return "PATCH"
	default:
		return "NONE"
	}
}
