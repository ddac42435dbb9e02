package config

import (
	"fmt"
	"time"

	"github.com/aryadee/smart-bank/pkg/database"
	"github.com/aryadee/smart-bank/pkg/genai"
	"github.com/aryadee/smart-bank/pkg/postgrest"
	"github.com/spf13/viper"
)

const (
	StorageModeGorm     = "gorm"
	StorageModeSupabase = "supabase"
)

type Config struct {
	API      API              `mapstructure:"api"`
	Storage  Storage          `mapstructure:"storage"`
	Database database.Config  `mapstructure:"database"`
	Supabase postgrest.Config `mapstructure:"supabase"`
	Auth     Auth             `mapstructure:"auth"`
	Ledger   Ledger           `mapstructure:"ledger"`
	Advisor  genai.Config     `mapstructure:"advisor"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Storage struct {
	Mode string `mapstructure:"mode"`
}

type Auth struct {
	Secret         string        `mapstructure:"secret"`
	Expiry         time.Duration `mapstructure:"expiry"`
	AdminAccountNo string        `mapstructure:"admin_account_no"`
	AdminPIN       string        `mapstructure:"admin_pin"`
}

type Ledger struct {
	MaxDeposit           int64  `mapstructure:"max_deposit"`
	Timezone             string `mapstructure:"timezone"`
	MaxAccountNoAttempts int    `mapstructure:"max_account_no_attempts"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	setDefaults()

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("api.port", ":8080")
	viper.SetDefault("storage.mode", StorageModeGorm)
	viper.SetDefault("database.driver", database.DriverSQLite)
	viper.SetDefault("database.path", "smartbank.db")
	viper.SetDefault("auth.expiry", "24h")
	viper.SetDefault("auth.admin_account_no", "ADMIN")
	viper.SetDefault("auth.admin_pin", "9999")
	viper.SetDefault("ledger.max_deposit", 100000)
	viper.SetDefault("ledger.timezone", "Asia/Kolkata")
	viper.SetDefault("ledger.max_account_no_attempts", 5)
	viper.SetDefault("advisor.model", "gemini-2.5-flash")
	viper.SetDefault("advisor.timeout", "30s")
	viper.SetDefault("supabase.timeout", "15s")
}
