package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	// Path file sqlite untuk session store lokal
	SessionDBPath string
}

type MockConfig struct {
	// Skala latensi buatan dalam persen. 100 = delay penuh, 0 = tanpa delay (untuk test).
	LatencyPercent int
}

type CartConfig struct {
	JanitorSpec string
	IdleTTL     time.Duration
}

func init() {
	// .env opsional, hanya untuk development lokal
	_ = godotenv.Load()
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: ":" + port}
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		SessionDBPath: GetEnv("SESSION_DB_PATH", "data/storefront.db"),
	}
}

func LoadMockConfig() MockConfig {
	return MockConfig{
		LatencyPercent: GetEnvAsInt("MOCK_LATENCY_PERCENT", 100),
	}
}

func LoadCartConfig() CartConfig {
	idleMinutes := GetEnvAsInt("CART_IDLE_TTL_MINUTES", 60)
	return CartConfig{
		JanitorSpec: GetEnv("CART_JANITOR_SPEC", "@every 5m"),
		IdleTTL:     time.Duration(idleMinutes) * time.Minute,
	}
}

// Helper untuk mendapatkan Environment Variable jika ada, atau default
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
