package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"ember/common"
	"ember/report"
)

// BuildProfile represents the current build profile.
type BuildProfile struct {
	// OutputPath is the path to write compilation output to.  Empty means
	// derive it from the input file name.
	OutputPath string

	// OutputMode should be one of the enumerated output modes.
	OutputMode int

	// LogLevel is the report log level the profile requests, or -1 if the
	// profile does not set one.
	LogLevel int
}

// Enumeration of possible output modes.
const (
	OutModeLLVM = iota // Output LLVM IR text (default).
	OutModeRun         // Evaluate the program instead of producing output.
)

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Output   string `toml:"output"`
	Mode     string `toml:"mode"`
	LogLevel string `toml:"loglevel"`
}

// logLevelNames maps log level selector strings to report log levels.
var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// LoadProfile loads the optional `ember.toml` build profile from the given
// directory.  A missing profile file yields the default profile.  LoadProfile
// runs before the reporter is initialized, so malformed profiles are returned
// as errors rather than reported.
func LoadProfile(dir string) (*BuildProfile, error) {
	profile := &BuildProfile{LogLevel: -1}

	path := filepath.Join(dir, common.EmberProfileFileName)
	f, err := os.Open(path)
	if err != nil {
		return profile, nil
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading profile file at `%s`: %s", path, err.Error())
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return nil, fmt.Errorf("error parsing profile file at `%s`: %s", path, err.Error())
	}

	profile.OutputPath = tomlProf.Output

	switch tomlProf.Mode {
	case "", "llvm":
		profile.OutputMode = OutModeLLVM
	case "run":
		profile.OutputMode = OutModeRun
	default:
		return nil, fmt.Errorf("profile file at `%s`: unknown output mode `%s`", path, tomlProf.Mode)
	}

	if tomlProf.LogLevel != "" {
		level, ok := logLevelNames[tomlProf.LogLevel]
		if !ok {
			return nil, fmt.Errorf("profile file at `%s`: unknown log level `%s`", path, tomlProf.LogLevel)
		}

		profile.LogLevel = level
	}

	return profile, nil
}
