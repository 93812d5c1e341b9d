package version

// Version is the binary version. It is overridden at build time:
//
//	go build -ldflags "-X github.com/grammarkit/grammarkit/version.Version=..."
var Version = "0.0.0"
