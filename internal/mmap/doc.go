// Package mmap maps local batch files into memory for read-only access.
//
//	m, err := mmap.Open("jobs/day1.in")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// On Unix systems the file is mapped with mmap(2) and access hints go to
// madvise(2). Elsewhere the file is read into memory and hints are ignored.
//
// Close is idempotent. Callers must not touch Bytes() after Close returns.
package mmap
