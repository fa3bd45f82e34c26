// Package version exposes build metadata for the /system/version endpoint.
package version

// Version is the service version, overridden at build time with
// -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"
