package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL    = "https://api.croustillant.menu/v1"
	DefaultRestaurant = 1456
	DefaultTimeout    = 10 * time.Second
	DefaultLogLevel   = "warn"

	envFile = ".env"
)

// Environment variables read by Load.
const (
	EnvBaseURL    = "CROUS_API_URL"
	EnvRestaurant = "CROUS_DEFAULT_RESTAURANT"
	EnvTimeout    = "CROUS_TIMEOUT"
	EnvProxy      = "CROUS_PROXY"
	EnvLogLevel   = "CROUS_LOG_LEVEL"
)

type Conf struct {
	BaseURL           string
	DefaultRestaurant int
	Timeout           time.Duration
	Proxy             string
	LogLevel          log.Level
}

// Default returns the built-in configuration, used when no variable is set.
func Default() Conf {
	lvl, _ := log.ParseLevel(DefaultLogLevel)
	return Conf{
		BaseURL:           DefaultBaseURL,
		DefaultRestaurant: DefaultRestaurant,
		Timeout:           DefaultTimeout,
		LogLevel:          lvl,
	}
}

// Load reads an optional .env file from the working directory, then applies
// any CROUS_* overrides found in the environment on top of Default.
func Load() (Conf, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Default(), err
	}
	return FromEnv(os.Getenv)
}

// loadEnvFile applies path with godotenv. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%s: %w", path, err)
}

func FromEnv(getenv func(string) string) (Conf, error) {
	c := Default()

	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		u, err := url.Parse(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return c, fmt.Errorf("%s: invalid url %q", EnvBaseURL, v)
		}
		c.BaseURL = strings.TrimRight(v, "/")
	}

	if v := strings.TrimSpace(getenv(EnvRestaurant)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c, fmt.Errorf("%s: not a restaurant code: %q", EnvRestaurant, v)
		}
		c.DefaultRestaurant = n
	}

	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		if d <= 0 {
			return c, fmt.Errorf("%s: must be positive, got %s", EnvTimeout, d)
		}
		c.Timeout = d
	}

	if v := strings.TrimSpace(getenv(EnvProxy)); v != "" {
		u, err := url.Parse(v)
		if err != nil || u.Host == "" {
			return c, fmt.Errorf("%s: invalid proxy url %q", EnvProxy, v)
		}
		c.Proxy = v
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.LogLevel = lvl
	}

	return c, nil
}

// SetupLogging sends diagnostics to stderr so they never mix with the
// rendered tables on stdout.
func SetupLogging(c Conf) {
	log.SetOutput(os.Stderr)
	log.SetLevel(c.LogLevel)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: c.LogLevel < log.DebugLevel,
		FullTimestamp:    true,
	})
}
