// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("todo-jobs/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	err = runner.NewBatch(store).Run(ctx, "day1", "day2")
//
// # Features
//
//   - Range reads
//   - Streaming multipart uploads through the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
