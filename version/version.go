// Package version exposes build metadata. The variables are meant to be set
// at link time:
//
//	go build -ldflags "-X github.com/valentin-kaiser/go-deviceid/version.GitTag=v1.2.3"
package version

import (
	"fmt"
	"regexp"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

var (
	// GitTag is the git tag of the build
	GitTag = "v0.0.0"
	// GitCommit is the full commit hash of the build
	GitCommit = "unknown"
	// GitShort is the abbreviated commit hash of the build
	GitShort = "unknown"
	// BuildDate is the date of the build
	BuildDate = "unknown"

	semver = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)
)

// Release describes the running binary
type Release struct {
	GitTag    string            `json:"git_tag"`
	GitCommit string            `json:"git_commit"`
	GitShort  string            `json:"git_short"`
	BuildDate string            `json:"build_date"`
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	Modules   map[string]string `json:"modules"`
}

// Get returns the release information of the running binary
func Get() *Release {
	r := &Release{
		GitTag:    GitTag,
		GitCommit: GitCommit,
		GitShort:  GitShort,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Modules:   make(map[string]string),
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			r.Modules[dep.Path] = dep.Version
		}
	}

	return r
}

// IsSemver reports whether the tag is a semantic version
func IsSemver(tag string) bool {
	return semver.MatchString(tag)
}

// Major returns the major version of GitTag or 0
func Major() int { return part(1) }

// Minor returns the minor version of GitTag or 0
func Minor() int { return part(2) }

// Patch returns the patch version of GitTag or 0
func Patch() int { return part(3) }

// String returns major.minor.patch of GitTag without prefix or pre-release suffix
func String() string {
	return fmt.Sprintf("%d.%d.%d", Major(), Minor(), Patch())
}

func part(i int) int {
	m := semver.FindStringSubmatch(strings.TrimSpace(GitTag))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[i])
	if err != nil {
		return 0
	}
	return n
}
