// Package revision identifies the source revision a release is built from.
//
// The commit hash is attached to the build image as the OCI revision label so
// an image found on a build host can be traced back to its checkout.
package revision
