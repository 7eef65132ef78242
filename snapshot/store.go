// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"fmt"
	"sync"

	"github.com/gogpu/eink"
)

// RegionIO reads and writes raw screen regions. framebuffer.Surface
// implements it.
type RegionIO interface {
	DumpRegion(r eink.Rect) ([]byte, error)
	RestoreRegion(r eink.Rect, data []byte) error
}

// Store holds at most one snapshot. Saving replaces it. A Store is safe
// for concurrent use.
type Store struct {
	rio RegionIO

	mu     sync.Mutex
	region eink.Rect
	state  *CompressedState
}

// NewStore returns an empty store over rio.
func NewStore(rio RegionIO) *Store {
	return &Store{rio: rio, region: eink.InvalidRect}
}

// Save dumps r, compresses it and makes it the current snapshot. On
// failure the previous snapshot is kept.
func (s *Store) Save(r eink.Rect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.rio.DumpRegion(r)
	if err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	w, h := r.Size()
	st, err := Compress(raw, h, w)
	if err != nil {
		return err
	}
	s.region, s.state = r, st
	eink.Logger().Debug("snapshot: saved",
		"region", r, "id", st.ID(), "raw", st.RawLen(), "compressed", st.Len())
	return nil
}

// Restore writes the current snapshot back to its region and returns that
// region. With no snapshot it does nothing and returns ok false. The
// snapshot stays current, so it can be restored again.
func (s *Store) Restore() (region eink.Rect, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return eink.InvalidRect, false, nil
	}
	raw, err := s.state.Decompress()
	if err != nil {
		return eink.InvalidRect, false, err
	}
	if err := s.rio.RestoreRegion(s.region, raw); err != nil {
		return eink.InvalidRect, false, fmt.Errorf("snapshot: restore: %w", err)
	}
	eink.Logger().Debug("snapshot: restored", "region", s.region, "id", s.state.ID())
	return s.region, true, nil
}

// Current returns the saved region and state, or InvalidRect and nil.
func (s *Store) Current() (eink.Rect, *CompressedState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region, s.state
}

// Discard drops the current snapshot.
func (s *Store) Discard() {
	s.mu.Lock()
	s.region, s.state = eink.InvalidRect, nil
	s.mu.Unlock()
}
