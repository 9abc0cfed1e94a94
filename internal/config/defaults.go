package config

import "github.com/spf13/viper"

// setDefaults installs the default values used when neither the config
// file nor the environment overrides them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", "=")
	v.SetDefault("reserve", 0)
	v.SetDefault("max_shown", 0)
	v.SetDefault("cache_size", 256)
}
