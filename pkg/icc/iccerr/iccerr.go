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

// Package iccerr collects the error values raised while decoding an ICC
// profile. Every failure the core reports collapses to a single kind -
// "parse failed" - but carries the byte offset of the field that triggered
// it, so a caller can locate the offending bytes without the core
// distinguishing error identities.
package iccerr

import "github.com/pkg/errors"

// ErrMalformed anchors every decode failure raised by pkg/icc. Call sites
// wrap it with errors.Wrap/Wrapf to attach a reason and an offset; use
// errors.Is(err, iccerr.ErrMalformed) to recognize any core decode failure.
var ErrMalformed = errors.New("icc: malformed profile")

// Malformed wraps ErrMalformed with a byte offset and a reason, folding
// both into the message instead of exposing a separate named error type,
// so every decode failure collapses to one sentinel a caller can match on.
func Malformed(offset int, reason string) error {
	return errors.Wrapf(ErrMalformed, "byte %d: %s", offset, reason)
}

// Malformedf is Malformed with a formatted reason.
func Malformedf(offset int, format string, args ...interface{}) error {
	return Malformed(offset, errors.Errorf(format, args...).Error())
}
