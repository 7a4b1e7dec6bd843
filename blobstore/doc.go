// Package blobstore abstracts where batch job files live.
//
// A batch job named "day1" reads "day1.in" from a Store and writes
// "day1.out" back to it. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads through a read-only memory mapping
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible services
package blobstore
