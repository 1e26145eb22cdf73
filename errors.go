// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIdentifier is returned by Unmarshal when the stream does
	// not carry the kd-tree snapshot file identifier.
	ErrBadIdentifier = textErr("bad snapshot identifier")
	// ErrSnapshotTooLarge is returned by Unmarshal when the size prefix
	// of a snapshot exceeds MaxSnapshotSize.
	ErrSnapshotTooLarge = textErr("snapshot too large")
)

const packageName = "kdtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
