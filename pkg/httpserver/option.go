package httpserver

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Option func(*Server)

func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

func BodyLimit(bytes int) Option {
	return func(s *Server) {
		s.bodyLimit = bytes
	}
}

func AppName(name string) Option {
	return func(s *Server) {
		s.appName = name
	}
}

// ErrorHandler renders errors returned by handlers and middleware.
func ErrorHandler(h fiber.ErrorHandler) Option {
	return func(s *Server) {
		s.errorHandler = h
	}
}
