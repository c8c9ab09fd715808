package cli

// Version is the build version, stamped at release time with
//
//	-ldflags "-X github.com/fsmiamoto/profilebox/internal/cli.Version=v1.2.3"
//
// Untagged and `go run` builds report "dev".
var Version = "dev"
