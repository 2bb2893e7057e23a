package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the credentials needed to act on behalf of a wallet.
type Config struct {
	Network         string
	EthPrivateKey   string
	StarkPrivateKey string
	ProviderAPIKey  string
}

var dotenvLoadOnce sync.Once

// ConfigFromEnv loads wallet credentials from the environment, reading the
// nearest .env file first when one exists.
func ConfigFromEnv() (Config, error) {
	loadDotEnvIfPresent()

	network := NormalizeNetwork(firstNonEmptyEnv("IMX_NETWORK", "NETWORK"))

	ethKey := firstNonEmptyEnv("ETH_PRIVATE_KEY", "PRIVATE_KEY", "MY_PRIVATE_KEY")
	starkKey := firstNonEmptyEnv("STARK_PRIVATE_KEY")
	apiKey := firstNonEmptyEnv("ALCHEMY_API_KEY", "PROVIDER_API_KEY")

	scope := "TESTNET_"
	if network == NetworkMain {
		scope = "MAINNET_"
	}
	if scoped := firstNonEmptyEnv(scope+"ETH_PRIVATE_KEY", scope+"PRIVATE_KEY"); scoped != "" {
		ethKey = scoped
	}
	if scoped := firstNonEmptyEnv(scope + "STARK_PRIVATE_KEY"); scoped != "" {
		starkKey = scoped
	}
	if scoped := firstNonEmptyEnv(scope+"ALCHEMY_API_KEY", scope+"PROVIDER_API_KEY"); scoped != "" {
		apiKey = scoped
	}

	if ethKey == "" {
		return Config{}, fmt.Errorf("ETH_PRIVATE_KEY is required")
	}
	if starkKey == "" {
		return Config{}, fmt.Errorf("STARK_PRIVATE_KEY is required")
	}

	return Config{
		Network:         network,
		EthPrivateKey:   ethKey,
		StarkPrivateKey: starkKey,
		ProviderAPIKey:  apiKey,
	}, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		if candidate := findDotEnv(cwd); candidate != "" {
			_ = godotenv.Load(candidate)
		}
	})
}

// findDotEnv walks from start towards the filesystem root and returns the
// first .env path found.
func findDotEnv(start string) string {
	current := start
	for {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
