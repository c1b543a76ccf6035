/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package iccserver is a small HTTP front end over pkg/icc: upload a
// profile, get back a JSON summary, and fetch a rendered PNG of its
// tone curves or a barcode of its profile ID.
package iccserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mechiko/go-iccprof/internal/zap4echo"
	"github.com/mechiko/go-iccprof/pkg/icc"
	"github.com/mechiko/go-iccprof/pkg/icc/config"
	"go.uber.org/zap"
)

const (
	defaultAddr            = "127.0.0.1:8888"
	defaultShutdownTimeout = 5 * time.Second
)

// entry is a previously-uploaded profile, kept alive in memory so its
// id can be used to fetch renders without re-uploading the file.
type entry struct {
	raw     []byte
	profile *icc.Profile
}

// Server is the ICC inspection demo service: upload handler, tag
// directory and curve-rendering routes, backed by an in-memory store
// of recently uploaded profiles.
type Server struct {
	server          *echo.Echo
	addr            string
	notify          chan error
	shutdownTimeout time.Duration

	fitCfg config.Config

	mu      sync.RWMutex
	entries map[string]entry
}

// New builds a Server listening on host:port, wired with the same
// logging/recovery/CORS middleware stack as the rest of this project's
// HTTP tooling.
func New(host, port string, fitCfg config.Config) (*Server, error) {
	addr := fmt.Sprintf("%s:%s", host, port)
	if port == "" {
		addr = defaultAddr
	}

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	log, _ := zap.NewDevelopment()

	e.Use(
		zap4echo.Logger(log),
		zap4echo.Recover(log),
	)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXCSRFToken},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
	}))

	s := &Server{
		server:          e,
		addr:            addr,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
		fitCfg:          fitCfg,
		entries:         make(map[string]entry),
	}

	if err := s.Routes(); err != nil {
		return nil, fmt.Errorf("iccserver: new routes: %w", err)
	}
	return s, nil
}

func (s *Server) Start() {
	go func() {
		s.notify <- s.server.Start(s.addr)
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) Echo() *echo.Echo {
	return s.server
}

func (s *Server) store(id string, e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = e
}

func (s *Server) lookup(id string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}
