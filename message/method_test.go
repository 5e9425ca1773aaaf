package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMethod(t *testing.T) {
	cases := []struct {
		buf  string
		want Method
	}{
		{"GET /index.html HTTP/1.1\r\n", MethodGet},
		{"HEAD /index.html HTTP/1.1\r\n", MethodHead},
		{"POST /form HTTP/1.1\r\n", MethodPost},
		{"PUT /upload HTTP/1.1\r\n", MethodPut},
		{"DELETE /old HTTP/1.1\r\n", MethodDelete},
		{"OPTIONS * HTTP/1.1\r\n", MethodOptions},
		{"PATCH /item HTTP/1.1\r\n", MethodPatch},
		{"no verb here", MethodNone},
		{"", MethodNone},
	}

	for _, c := range cases {
		t.Run(c.buf, func(t *testing.T) {
			assert.Equal(t, c.want, LookupMethod([]byte(c.buf)))
		})
	}
}

// The scan is a substring search in table order, so a verb hiding
// inside the resource wins over the request's actual method.
func TestLookupMethod_SubstringBias(t *testing.T) {
	assert.Equal(t, MethodGet,
		LookupMethod([]byte("DELETE /GETTYSBURG.html HTTP/1.1\r\n")))
	assert.Equal(t, MethodHead,
		LookupMethod([]byte("DELETE /HEADLINES HTTP/1.1\r\n")))
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "GET", MethodGet.String())
	assert.Equal(t, "CONNECT", MethodConnect.String())
	assert.Equal(t, "NONE", MethodNone.String())
}
