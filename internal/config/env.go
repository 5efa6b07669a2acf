package config

import "os"

// EnvConfigPath names the environment variable holding a config file path
const EnvConfigPath = "RESUME_GEN_CONFIG"

// PathFromEnv returns the config file path from the environment, or ""
func PathFromEnv() string {
	return os.Getenv(EnvConfigPath)
}
