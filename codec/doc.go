// Package codec is the boundary between in-memory pixel buffers and encoded image files.
//
// A [Codec] turns a byte stream into a [Raster] (dimensions, channel format and tightly packed
// pixel bytes) and back. Callers decide which channel formats they accept; the codec never
// reinterprets one format as another.
package codec
