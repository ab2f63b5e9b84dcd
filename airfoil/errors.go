// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package airfoil

import (
	"github.com/cpmech/gosl/chk"
)

// ConfigError reports malformed descriptors or settings
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// FileError reports an unreadable coordinate file
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return chk.Err("airfoil: cannot read %q: %v", e.Path, e.Err).Error() }

func (e *FileError) Unwrap() error { return e.Err }

// configErr returns a ConfigError with a formatted message
func configErr(msg string, prm ...interface{}) error {
	return &ConfigError{Msg: chk.Err(msg, prm...).Error()}
}
