// Package resource bounds the resources used by batch runs.
//
// A Controller limits how many jobs run at once and, optionally, how many
// bytes per second are read from and written to blob stores. A nil
// *Controller imposes no limits.
//
//	rc := resource.NewController(resource.Config{
//	    MaxJobs:            4,
//	    IOLimitBytesPerSec: 8 << 20,
//	})
//
//	if err := rc.AcquireJob(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseJob()
//
//	r := rc.Reader(ctx, blobReader)
package resource
