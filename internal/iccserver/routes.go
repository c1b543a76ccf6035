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

package iccserver

import (
	"crypto/md5"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mechiko/go-iccprof/pkg/icc"
)

func (s *Server) Routes() error {
	s.server.POST("/api/profiles", s.uploadProfile)
	s.server.GET("/api/profiles/:id", s.getSummary)
	s.server.GET("/api/profiles/:id/trc.png", s.getTRCImage)
	s.server.GET("/api/profiles/:id/id.png", s.getIDBarcode)
	return nil
}

func (s *Server) uploadProfile(c echo.Context) error {
	fh, err := c.FormFile("profile")
	if err != nil {
		return s.badRequest(c, fmt.Errorf("profile file is required: %w", err))
	}

	f, err := fh.Open()
	if err != nil {
		return s.serverError(c, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return s.serverError(c, err)
	}

	profile, err := icc.Parse(raw)
	if err != nil {
		return s.badRequest(c, err)
	}

	sum := md5.Sum(raw)
	id := fmt.Sprintf("%x", sum)
	s.store(id, entry{raw: raw, profile: profile})

	return c.JSON(http.StatusOK, summarize(id, profile))
}

func (s *Server) getSummary(c echo.Context) error {
	id := c.Param("id")
	e, ok := s.lookup(id)
	if !ok {
		return s.notFound(c, fmt.Errorf("no profile with id %q", id))
	}
	return c.JSON(http.StatusOK, summarize(id, e.profile))
}
