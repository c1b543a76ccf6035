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
	"bytes"
	"fmt"
	"image/png"
	"net/http"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/labstack/echo/v4"
)

// getIDBarcode renders the profile's hex-encoded MD5 profile ID as a
// Code 128 barcode, so a printed proof sheet can carry a scannable
// reference back to the exact profile it was generated from.
func (s *Server) getIDBarcode(c echo.Context) error {
	id := c.Param("id")
	e, ok := s.lookup(id)
	if !ok {
		return s.notFound(c, fmt.Errorf("no profile with id %q", id))
	}
	if !e.profile.ProfileIDPresent {
		return s.badRequest(c, fmt.Errorf("profile %q has no embedded profile ID to encode", id))
	}

	code, err := code128.Encode(fmt.Sprintf("%x", e.profile.ProfileID))
	if err != nil {
		return s.serverError(c, err)
	}
	scaled, err := barcode.Scale(code, 300, 80)
	if err != nil {
		return s.serverError(c, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return s.serverError(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
