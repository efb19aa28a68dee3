/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logging

import (
	"reflect"

	"github.com/rs/zerolog"
)

// Package represents the import path for a Go package.
type Package string

// GetPackage returns the Package that the specified value's type belongs to.
// The common usage pattern is to declare an empty struct within the package
// and pass in an instance of it:
//
//	type empty struct{}
//
//	var pkg = logging.GetPackage(empty{})
func GetPackage(v interface{}) Package {
	return Package(reflect.TypeOf(v).PkgPath())
}

// PackageLogger adds the specified package as a field to the logger.
func PackageLogger(logger *zerolog.Logger, p Package) *zerolog.Logger {
	pkgLogger := logger.With().
		Str(string(Pkg), string(p)).
		Logger()
	return &pkgLogger
}
