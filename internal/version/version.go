package version

// Overridden at build time via -ldflags "-X soundbyte/internal/version.BuildDate=..."
var (
	AppName        = "Soundbyte"
	AppDescription = "Discord soundboard bot that plays uploaded audio clips on demand"
	BuildDate      string
	GoVersion      string
)
