package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application settings, sourced from the environment
// with a .env file overlay. Defaults target the reference device window.
type Config struct {
	// DeviceName is the title of the mirrored device window
	DeviceName string

	// Window size and position on screen
	ScreenWidth  int
	ScreenHeight int
	WindowX      int
	WindowY      int

	// DictionaryPath is the newline-delimited word list
	DictionaryPath string
	// GlyphDir holds the per-character reference images
	GlyphDir string

	// Pointer server
	PointerHost string
	PointerPort int

	// Storage backend: "memory" or "redis"
	StorageType string
	RedisURL    string

	// Local API listen port
	ListenPort int
}

// Load reads configuration from a .env file (if present) and the
// environment
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DeviceName:     getEnv("GRIDHUNT_DEVICE", "iPhone"),
		ScreenWidth:    getEnvInt("GRIDHUNT_SCREEN_WIDTH", 523),
		ScreenHeight:   getEnvInt("GRIDHUNT_SCREEN_HEIGHT", 1135),
		WindowX:        getEnvInt("GRIDHUNT_WINDOW_X", 0),
		WindowY:        getEnvInt("GRIDHUNT_WINDOW_Y", 0),
		DictionaryPath: getEnv("GRIDHUNT_DICTIONARY", "data/words.txt"),
		GlyphDir:       getEnv("GRIDHUNT_GLYPHS", "data/glyphs"),
		PointerHost:    getEnv("GRIDHUNT_POINTER_HOST", "127.0.0.1"),
		PointerPort:    getEnvInt("GRIDHUNT_POINTER_PORT", 5000),
		StorageType:    getEnv("GRIDHUNT_STORAGE", "memory"),
		RedisURL:       getEnv("GRIDHUNT_REDIS_URL", ""),
		ListenPort:     getEnvInt("GRIDHUNT_LISTEN_PORT", 8080),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
