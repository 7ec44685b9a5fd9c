package main

import (
	"net"
	"strconv"
	"time"

	"github.com/napalu/flagcomp/registry"
)

type serverFlags struct {
	host        *string
	port        *int32
	readTimeout *time.Duration
}

func registerServerFlags(reg *registry.Registry) *serverFlags {
	return &serverFlags{
		host:        reg.String("server_host", "localhost", "Interface the greeting server listens on"),
		port:        reg.Int32("server_port", 8080, "Port the greeting server listens on"),
		readTimeout: reg.Duration("server_read_timeout", 5*time.Second, "Maximum time to read a request"),
	}
}

func (s *serverFlags) address() string {
	return net.JoinHostPort(*s.host, strconv.Itoa(int(*s.port)))
}
