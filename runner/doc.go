// Package runner drives a todo list from line-oriented input.
//
// Both drivers ignore the first input line (it carries the command count)
// and execute the remaining lines in order through package command.
//
//   - Interactive reads a stream, skips malformed lines and keeps going.
//   - Batch reads "<job>.in" from a blobstore.Store and writes "<job>.out".
//     The first malformed line aborts the job and no output is published.
//
// Batch inputs may be compressed: "<job>.in.zst" (zstd) and "<job>.in.lz4"
// (lz4 frame) produce "<job>.out.zst" and "<job>.out.lz4". Several jobs run
// concurrently, each against its own list.
package runner
