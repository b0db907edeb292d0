package timezone

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const zonePrefix = "zoneinfo/"

// Local is the config value selecting the system timezone.
const Local = "local"

// Load resolves an IANA name. Empty means UTC, "local" means the system
// timezone.
func Load(name string) (*time.Location, error) {
	switch {
	case name == "":
		return time.UTC, nil
	case strings.EqualFold(name, Local):
		return time.LoadLocation(SystemName())
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load timezone %q", name)
	}
	return loc, nil
}

// SystemName is the IANA name of the system timezone, "Local" when it
// cannot be determined.
func SystemName() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return strings.TrimPrefix(tz, ":")
	}
	if runtime.GOOS == "windows" {
		return "Local"
	}
	target, err := filepath.EvalSymlinks("/etc/localtime")
	if err != nil {
		log.Debug().Err(err).Msg("can't resolve /etc/localtime")
		return "Local"
	}
	if name, ok := zoneFromPath(target); ok {
		return name
	}
	return "Local"
}

func zoneFromPath(path string) (string, bool) {
	idx := strings.LastIndex(filepath.ToSlash(path), zonePrefix)
	if idx == -1 {
		return "", false
	}
	return path[idx+len(zonePrefix):], true
}
