package version

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

type versionInfo struct {
	GitTag    string
	GitCommit string
}

var (
	versionInfoCache      versionInfo
	versionInfoCacheMutex sync.Mutex
)

const (
	defaultTag     string = "0.1.0"
	unknownVersion string = "<unknown>"
)

func GetVersionInfo() versionInfo {
	versionInfoCacheMutex.Lock()
	defer versionInfoCacheMutex.Unlock()
	if versionInfoCache.GitTag == "" {
		if _, gitCommit, err := ParseBuildInfo(); err == nil && gitCommit != "" {
			versionInfoCache = versionInfo{GitTag: defaultTag, GitCommit: gitCommit}
		} else {
			versionInfoCache = versionInfo{GitTag: defaultTag, GitCommit: unknownVersion}
		}
	}
	return versionInfoCache
}

func ParseBuildInfo() (string, string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", errors.New("failed to read build info")
	}
	var gitHash string
	var time string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			gitHash = s.Value
		case "vcs.time":
			time = s.Value[:10]
		}
	}

	return time, gitHash, nil
}

func BuildVersionString(appTitle string) string {
	info := GetVersionInfo()
	return fmt.Sprintf("%s version %s (%s, %s/%s)",
		appTitle, info.GitTag, info.GitCommit, runtime.GOOS, runtime.GOARCH)
}
