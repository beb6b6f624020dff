package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/hiveden/machinefacts/internal/netif"
	"github.com/hiveden/machinefacts/internal/registry"
)

const (
	EnvPrefix  = "MACHINEFACTS"
	configName = "machinefacts"
)

type Config struct {
	Listen            string        `mapstructure:"listen"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFormat         string        `mapstructure:"log_format"`
	InterfacesPlist   string        `mapstructure:"interfaces_plist"`
	IORegPath         string        `mapstructure:"ioreg_path"`
	CommandTimeout    time.Duration `mapstructure:"command_timeout"`
	DiskPath          string        `mapstructure:"disk_path"`
	PCIDBPath         string        `mapstructure:"pcidb_path"`
	PCIDBNetworkFetch bool          `mapstructure:"pcidb_network_fetch"`
}

func Default() *Config {
	return &Config{
		Listen:          ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		InterfacesPlist: netif.DefaultPlistPath,
		IORegPath:       registry.DefaultIORegPath,
		CommandTimeout:  registry.DefaultCommandTimeout,
		DiskPath:        "/",
	}
}

// SetDefaults registers the defaults on v so that environment variables
// and bound flags are visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("listen", d.Listen)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("interfaces_plist", d.InterfacesPlist)
	v.SetDefault("ioreg_path", d.IORegPath)
	v.SetDefault("command_timeout", d.CommandTimeout)
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("pcidb_path", d.PCIDBPath)
	v.SetDefault("pcidb_network_fetch", d.PCIDBNetworkFetch)
}

// Load reads cfgFile, or machinefacts.yaml from the user config directory
// or the working directory when cfgFile is empty. A missing default file
// is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, configName)
}
