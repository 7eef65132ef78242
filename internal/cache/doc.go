// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic cache with a soft size limit.
//
// When an insertion pushes the cache past its limit, the least recently
// touched quarter of the entries is dropped. It is used to keep rendered
// glyph coverage masks between text draws:
//
//	masks := cache.New[maskKey, *image.Alpha](2048)
//	m := masks.GetOrCreate(key, func() *image.Alpha { return render(key) })
package cache
