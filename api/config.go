package api

import (
	"sync"

	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	VerdictConfig
}

type StorageConfig struct {
	// Driver selects the persistence adapter: "dynamo" or "memory".
	Driver           string
	TableNameCatalog string
}

type ServerConfig struct {
	Port int
}

type VerdictConfig struct {
	GeminiAPIKey string
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:           getStringOrDefault("storage.Driver", "dynamo"),
			TableNameCatalog: viper.GetString("storage.TableNameCatalog"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		VerdictConfig: VerdictConfig{
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
