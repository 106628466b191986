// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common
// kinds of circuits.
//
// Package gen also supplies random circuits, drawn from a
// seedable package random source.
package gen
