package version

// Version is set at build time via -ldflags
var Version = "dev"

// Tagline describes the application
const Tagline = "Terminal statusline engine for AI coding sessions"
