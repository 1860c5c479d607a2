// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package memory provides the clocked parts of hwmem: registers and RAM banks.
//
package memory
