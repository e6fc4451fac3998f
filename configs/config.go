package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string

	// Fallback location and the city label used when reverse geocoding
	// is unreachable. Reference default is central Delhi.
	DefaultLat  float64
	DefaultLng  float64
	DefaultCity string

	GeocoderURL     string
	LocationTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "storefront.db"),
		Port:            getEnv("PORT", "8000"),
		DefaultLat:      getEnvFloat("DEFAULT_LAT", 28.6139),
		DefaultLng:      getEnvFloat("DEFAULT_LNG", 77.2090),
		DefaultCity:     getEnv("DEFAULT_CITY", "Delhi"),
		GeocoderURL:     getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		LocationTimeout: time.Duration(10) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("bad value for %s, using default", key)
	}
	return fallback
}
