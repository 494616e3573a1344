package config

import (
	"fmt"
	"time"

	"github.com/onestop/osic/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyConstantsFile = "files.constants"
	KeyPoliciesFile  = "files.policies"
	KeySaveSteps     = "save.steps"
	KeySaveDelay     = "save.delay"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
)

// Settings holds the runtime configuration of the policy desk.
type Settings struct {
	ConstantsFile string
	PoliciesFile  string
	LogLevel      string
	LogFormat     string
	SaveDelay     time.Duration
	SaveSteps     int
}

// SetDefaults registers default values for every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyConstantsFile, "Const.dat")
	v.SetDefault(KeyPoliciesFile, "Policies.dat")
	v.SetDefault(KeySaveSteps, 50)
	v.SetDefault(KeySaveDelay, 100*time.Millisecond)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads Settings out of v, expanding file paths.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		ConstantsFile: ExpandPath(v.GetString(KeyConstantsFile)),
		PoliciesFile:  ExpandPath(v.GetString(KeyPoliciesFile)),
		SaveSteps:     v.GetInt(KeySaveSteps),
		SaveDelay:     v.GetDuration(KeySaveDelay),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
	}

	if s.ConstantsFile == "" {
		return Settings{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyConstantsFile)
	}
	if s.PoliciesFile == "" {
		return Settings{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyPoliciesFile)
	}
	if s.SaveSteps < 0 {
		return Settings{}, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeySaveSteps)
	}
	if s.SaveDelay < 0 {
		return Settings{}, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeySaveDelay)
	}

	return s, nil
}
