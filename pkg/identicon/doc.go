// Package identicon derives a deterministic pixel-art avatar from an
// arbitrary input string.
//
// The same input always produces the same image, and different inputs
// produce visually distinct images with high probability. The work is
// organised as a fixed linear pipeline threading a single record
// through a series of stages: the input is hashed into a 16-byte
// digest, the first three digest bytes pick the fill colour, the
// digest is folded into a mirrored 5x5 grid, odd-valued cells are
// dropped, the surviving cells are mapped to pixel rectangles, the
// rectangles are painted onto a 250x250 canvas and the canvas is
// encoded to PNG bytes. A final save stage writes the bytes to a file
// named after the input.
//
// The pipeline stops on the first encountered error, and every error
// is decorated with the name of the stage it came from. The hash,
// canvas and save collaborators are narrow interfaces and can be
// swapped through options, so the deterministic core is testable
// without touching the filesystem or an imaging backend.
package identicon
