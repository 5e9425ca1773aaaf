package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cmcquinn/http-server/message"
	"github.com/cmcquinn/http-server/pkg/bytestream"
)

// feeder assembles an HTTP request typed on stdin, one line at a
// time, and reports the parsed fields as soon as the completeness
// check passes. Handy for poking at the reassembly logic without
// a socket.

func consume(st *bytestream.Stream, doneC chan struct{}) {
	defer close(doneC)

	var buf []byte
	chunk := make([]byte, 4)
	for {
		n, err := st.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if message.Complete(buf) {
			var req message.Message
			req.Unmarshal(buf)
			fmt.Printf("method=%s resource=%s host=%s\n",
				req.Method, req.Resource, req.Header)
			return
		}
		if err == io.EOF {
			fmt.Println("stream ended before the request completed")
			return
		}
		if err != nil {
			fmt.Println("Error: ", err)
			return
		}
	}
}

func main() {
	st := bytestream.New()
	doneC := make(chan struct{})
	go consume(st, doneC)

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		io.WriteString(st, sc.Text())
		io.WriteString(st, "\r\n")
	}
	st.Close()

	<-doneC
}
