// Package model defines core types used throughout triedo.
//
// # Identity Types
//
//   - ID: monotonically increasing item identifier (uint64), never reused
//
// # Data Types
//
//   - Item: a todo item with description words, tags and a done flag
//   - Term: a single query term, either a word term or a tag term
//
// Items render in the line format used by the command front end:
//
//	0 "buy milk" #errand #home
package model
