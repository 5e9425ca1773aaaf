package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/cmcquinn/http-server/pkg/tap"
	"github.com/cmcquinn/http-server/session"
)

// A Server owns the listening socket and the configuration shared
// by every connection worker. Setters must be called before Spin;
// workers read the config unsynchronized after that.
type Server struct {
	listener net.Listener
	cfg      session.Config
	verbose  bool
}

func New() *Server {
	return &Server{
		cfg: session.Config{
			RecvLen: session.DefaultRecvLen,
			Root:    ".",
		},
	}
}

// SetRecvLen sets how many bytes each receive call asks for.
func (srv *Server) SetRecvLen(n int) {
	srv.cfg.RecvLen = n
}

func (srv *Server) RecvLen() int {
	return srv.cfg.RecvLen
}

// SetRoot sets the directory resources are resolved against.
func (srv *Server) SetRoot(dir string) {
	srv.cfg.Root = dir
}

// SetVerbose enables a hex dump of each connection's received
// bytes once the connection finishes.
func (srv *Server) SetVerbose(v bool) {
	srv.verbose = v
}

// Init binds the listening socket on the given port, any address
// family. Resolution and bind failures are configuration errors
// with nothing to retry, so they stop the process.
func (srv *Server) Init(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen error: %v\n", err)
		os.Exit(1)
	}
	srv.listener = listener
}

// Addr returns the bound address, mainly for callers that asked
// for port 0.
func (srv *Server) Addr() net.Addr {
	return srv.listener.Addr()
}

// Spin accepts connections until the listener is closed. Every
// connection gets its own detached worker; nothing waits on it
// and nothing bounds how many are live at once.
func (srv *Server) Spin() {
	for {
		conn, err := srv.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				fmt.Println("accept:", err)
			}
			return
		}
		go srv.handle(conn)
	}
}

func (srv *Server) handle(conn net.Conn) {
	defer conn.Close()

	var rw io.ReadWriter = conn
	var history *tap.Tap
	if srv.verbose {
		// Instrument the read side so the wire bytes can be
		// dumped once the connection is done.
		history = tap.New(conn)
		rw = struct {
			io.Reader
			io.Writer
		}{history, conn}
	}

	if err := session.New(rw, &srv.cfg).Serve(); err != nil {
		fmt.Println(err)
	}
	if history != nil {
		fmt.Println(history.Dump())
	}
}

// Exit releases the listener. Workers already running finish on
// their own.
func (srv *Server) Exit() {
	if srv.listener != nil {
		srv.listener.Close()
	}
}
