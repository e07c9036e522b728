package version

// Version is set at build time via -ldflags for release builds.
var Version = "0.2.0-dev"
