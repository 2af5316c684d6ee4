// Package probe reads image dimensions from file headers without decoding
// pixel data.
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered on import.
// [Dimensions] opens a file and returns its [Size]; [Decode] does the same
// for an already-open reader and is what the tests drive.
package probe
