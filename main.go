package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cmcquinn/http-server/server"
	"github.com/cmcquinn/http-server/session"
)

const defaultPort = "1024"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	port := flag.String("p", defaultPort, "listen for connections on `port`")
	size := flag.Int("s", session.DefaultRecvLen, "receive `size` in bytes")
	dir := flag.String("d", ".", "serve files from `dir`")
	verbose := flag.Bool("v", false, "hex-dump each connection's received bytes")
	flag.Usage = usage
	flag.Parse()

	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "receive size must be positive, got %d\n", *size)
		os.Exit(1)
	}

	srv := server.New()
	srv.SetRecvLen(*size)
	srv.SetRoot(*dir)
	srv.SetVerbose(*verbose)

	srv.Init(*port)
	fmt.Printf("listening on %s\n", srv.Addr())
	srv.Spin()
	srv.Exit()
}
