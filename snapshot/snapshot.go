// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package snapshot keeps a compressed copy of a screen region so it can be
// put back later, for example to undo everything drawn since a save.
package snapshot

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Sentinel errors for snapshot package.
var (
	// ErrCorrupt is returned when compressed data does not decode to the
	// recorded size.
	ErrCorrupt = errors.New("snapshot: corrupt state")

	// ErrSize is returned when raw data does not match the given region
	// dimensions.
	ErrSize = errors.New("snapshot: data does not match dimensions")
)

// Namespace is the UUID namespace of snapshot content ids.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gogpu/eink/snapshot"))

var (
	encoder = sync.OnceValue(func() *zstd.Encoder {
		e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic("snapshot: zstd encoder: " + err.Error())
		}
		return e
	})
	decoder = sync.OnceValue(func() *zstd.Decoder {
		d, err := zstd.NewReader(nil)
		if err != nil {
			panic("snapshot: zstd decoder: " + err.Error())
		}
		return d
	})
)

// CompressedState is an immutable compressed pixel region.
type CompressedState struct {
	width, height int
	rawLen        int
	id            uuid.UUID
	data          []byte
}

// Compress packs raw, the row-major pixels of a width×height region.
// len(raw) must be a positive multiple of width*height.
func Compress(raw []byte, height, width int) (*CompressedState, error) {
	if width <= 0 || height <= 0 || len(raw) == 0 || len(raw)%(width*height) != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSize, len(raw), width, height)
	}
	return &CompressedState{
		width:  width,
		height: height,
		rawLen: len(raw),
		id:     uuid.NewSHA1(Namespace, raw),
		data:   encoder().EncodeAll(raw, nil),
	}, nil
}

// Decompress returns the original bytes.
func (s *CompressedState) Decompress() ([]byte, error) {
	raw, err := decoder().DecodeAll(s.data, make([]byte, 0, s.rawLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if len(raw) != s.rawLen {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrCorrupt, len(raw), s.rawLen)
	}
	return raw, nil
}

// ID returns a content id: equal pixels give equal ids.
func (s *CompressedState) ID() uuid.UUID { return s.id }

// Len returns the compressed size in bytes.
func (s *CompressedState) Len() int { return len(s.data) }

// RawLen returns the uncompressed size in bytes.
func (s *CompressedState) RawLen() int { return s.rawLen }

// Dimensions returns the region size in pixels.
func (s *CompressedState) Dimensions() (width, height int) { return s.width, s.height }
