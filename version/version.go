package version

// Version is the released version, overridden at build time with -ldflags.
var Version = "dev"
