// Package pixel implements an RGBA pixel buffer and its color type.
//
// A [Buffer] stores width×height pixels as 4 bytes each (red, green, blue, alpha). Pixels are
// addressed as (x, y) where x selects the row and y the column: pixel (x, y) occupies bytes
// [4·x·width + 4·y, 4·x·width + 4·y + 4). Buffers are loaded from and saved to image files
// through a [codec.Codec], PNG by default.
//
// A Buffer is not safe for concurrent use without external locking.
package pixel
