// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"fmt"
	"os"
)

// OpenDevice opens an evdev node for reading. Closing the returned file
// unblocks a pending read, which is how Pipeline.Run shuts readers down.
func OpenDevice(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	return f, nil
}
