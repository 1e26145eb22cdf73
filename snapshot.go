// Copyright 2026 The kdtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// MaxSnapshotSize is the largest snapshot, in bytes excluding the size
// prefix, that Unmarshal will accept.
const MaxSnapshotSize = 1 << 30

// snapshotIdentifier is the FlatBuffers file identifier of a kd-tree
// snapshot.
var snapshotIdentifier = []byte("KD2D")

const (
	// identifierLength is the length of snapshotIdentifier.
	identifierLength = 4
	// pointBytes is the size of a Point struct in a snapshot: two
	// little-endian float64 values, X then Y.
	pointBytes = 2 * flatbuffers.SizeFloat64
	// pointsSlot is the vtable offset of the root table's only field,
	// the vector of Point structs.
	pointsSlot = flatbuffers.VOffsetT(flatbuffers.VtableMetadataFields * flatbuffers.SizeVOffsetT)
)

// Marshal serializes the Tree as a size-prefixed FlatBuffers snapshot
// to a writer, returning the number of bytes written. Panics if w is
// nil.
//
// The snapshot lists the Tree's points in the order Do visits them, so
// Unmarshal rebuilds a Tree of identical shape, not merely one holding
// the same points.
func (t *Tree) Marshal(w io.Writer) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	return w.Write(encodeSnapshot(t.preorder()))
}

// Unmarshal deserializes one snapshot written by Marshal from a stream,
// returning the Tree built from it. Panics if r is nil.
//
// If this function returns without error, the reader will be positioned
// ready to read the first byte after the snapshot.
func Unmarshal(r io.Reader) (*Tree, error) {
	if r == nil {
		textPanic("nil reader")
	}

	// Read the size prefix, then exactly that many bytes.
	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, wrapErr("failed to read snapshot size", err)
	}
	size := flatbuffers.GetUint32(prefix)
	if size > MaxSnapshotSize {
		return nil, fmt.Errorf("%w (size=%d, max=%d)", ErrSnapshotTooLarge, size, MaxSnapshotSize)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapErr("failed to read %d-byte snapshot", err, size)
	}

	ps, err := decodeSnapshot(buf)
	if err != nil {
		return nil, err
	}

	t := New()
	for i := range ps {
		t.Insert(ps[i])
	}
	return t, nil
}

// encodeSnapshot builds the size-prefixed FlatBuffers snapshot holding
// ps, in order.
func encodeSnapshot(ps Points) []byte {
	b := flatbuffers.NewBuilder(64 + len(ps)*pointBytes)

	// Vectors are built back to front, as are the fields of each
	// struct.
	b.StartVector(pointBytes, len(ps), flatbuffers.SizeFloat64)
	for i := len(ps) - 1; i >= 0; i-- {
		b.Prep(flatbuffers.SizeFloat64, pointBytes)
		b.PrependFloat64(ps[i].Y)
		b.PrependFloat64(ps[i].X)
	}
	vec := b.EndVector(len(ps))

	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec, 0)
	root := b.EndObject()
	b.FinishSizePrefixedWithFileIdentifier(root, snapshotIdentifier)

	return b.FinishedBytes()
}

// decodeSnapshot extracts the points from a snapshot whose size prefix
// has already been removed.
func decodeSnapshot(buf []byte) (ps Points, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT+identifierLength {
		return nil, fmtErr("snapshot too short (Len=%d)", len(buf))
	}
	id := buf[flatbuffers.SizeUOffsetT : flatbuffers.SizeUOffsetT+identifierLength]
	if string(id) != string(snapshotIdentifier) {
		return nil, fmt.Errorf("%w (got %q, want %q)", ErrBadIdentifier, id, snapshotIdentifier)
	}

	err = safeFlatBuffersInteraction(func() error {
		t := flatbuffers.Table{
			Bytes: buf,
			Pos:   flatbuffers.GetUOffsetT(buf),
		}
		o := flatbuffers.UOffsetT(t.Offset(pointsSlot))
		if o == 0 {
			ps = make(Points, 0)
			return nil
		}
		start := t.Vector(o)
		n := t.VectorLen(o)
		if uint64(start)+uint64(n)*pointBytes > uint64(len(buf)) {
			return fmt.Errorf("point vector overruns snapshot (Len=%d, start=%d, count=%d)", len(buf), start, n)
		}
		ps = make(Points, n)
		for i := range ps {
			pos := start + flatbuffers.UOffsetT(i*pointBytes)
			ps[i].X = t.GetFloat64(pos)
			ps[i].Y = t.GetFloat64(pos + flatbuffers.SizeFloat64)
			if !ps[i].Valid() {
				return fmt.Errorf("invalid point %s at snapshot index %d", ps[i], i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr("malformed snapshot", err)
	}
	return ps, nil
}

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// FlatBuffers' Go code doesn't use standard Go error handling, so any
// attempt to read a corrupt buffer may trigger an out of range panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}
