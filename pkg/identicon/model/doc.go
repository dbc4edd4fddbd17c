// Package model provides the data structures shared by the identicon
// pipeline. It defines the image record threaded through the pipeline
// stages, the grid and pixel geometry types, and the stage names used
// for tracing and error decoration.
package model
