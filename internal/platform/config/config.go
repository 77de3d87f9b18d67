package config

import (
	"fmt"
	"os"
)

type Config struct {
	FormularyPath string
	LogPath       string
}

// New builds the runtime configuration. The formulary path is optional: an
// empty path means the builtin catalog only, and a path that does not exist
// yet is allowed. Debug logging is enabled by the MEDCALC_LOG environment
// variable naming a file.
func New(formularyPath string) (Config, error) {
	if formularyPath != "" {
		if info, err := os.Stat(formularyPath); err == nil && info.IsDir() {
			return Config{}, fmt.Errorf("formulary path %s is a directory", formularyPath)
		}
	}
	return Config{
		FormularyPath: formularyPath,
		LogPath:       os.Getenv("MEDCALC_LOG"),
	}, nil
}
