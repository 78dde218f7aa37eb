package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"route-descriptor/internal/description"
	"route-descriptor/internal/models"
)

const envPrefix = "ROUTE_DESCRIPTOR"

// Config holds all configuration for the descriptor service
type Config struct {
	Addr          string
	AppEnv        string
	DBPath        string
	TransactionID string
	Descriptor    models.DescriptorConfig
}

// Load reads configuration from ROUTE_DESCRIPTOR_* environment variables.
// An empty DB path is left for the caller to resolve.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_addr", "127.0.0.1:8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("db_path", "")
	v.SetDefault("geometry", true)
	v.SetDefault("compression", true)
	v.SetDefault("instructions", true)
	v.SetDefault("trailing_distance", string(models.TrailingFold))
	v.SetDefault("transaction_id", description.DefaultTransactionID)

	trailing, err := models.ParseTrailingPolicy(v.GetString("trailing_distance"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s_TRAILING_DISTANCE: %w", envPrefix, err)
	}

	return &Config{
		Addr:          v.GetString("server_addr"),
		AppEnv:        v.GetString("app_env"),
		DBPath:        v.GetString("db_path"),
		TransactionID: v.GetString("transaction_id"),
		Descriptor: models.DescriptorConfig{
			Geometry:       v.GetBool("geometry"),
			EncodeGeometry: v.GetBool("compression"),
			Instructions:   v.GetBool("instructions"),
			Trailing:       trailing,
		},
	}, nil
}
