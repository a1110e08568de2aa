package config

import (
	"flag"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr  = ":8080"
	defaultDatabaseDSN = ""
	defaultLogLevel    = "debug"
	defaultMasterEmail = "master@inkstudio.local"
)

type Config struct {
	ServerAddr  string
	DatabaseDSN string
	LogLevel    string
	MasterEmail string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// optional .env, flags and environment still win
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "studio server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "studio database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.MasterEmail, "m", defaultMasterEmail, "email that registers with the master role")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if masterEmailEnv := os.Getenv("MASTER_EMAIL"); masterEmailEnv != "" {
			cfg.MasterEmail = masterEmailEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
