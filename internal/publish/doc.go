// Package publish uploads finished release archives to S3.
//
// Publishing runs after the archive is complete and is never required for a
// successful package run. Credentials come from the AWS SDK default chain
// (environment, shared config, instance role). S3-compatible stores are
// supported through a custom endpoint and path-style addressing.
//
// Example usage:
//
//	pub, err := publish.NewS3(ctx, cfg.Publish)
//	if err != nil {
//	    return err
//	}
//	url, err := pub.Upload(ctx, "release/svc-1.2.3.tar.gz")
package publish
