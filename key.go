package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kirsle/configdir"
)

var (
	configPath = configdir.LocalConfig("xkey")
	seedPath   = path.Join(configPath, "seed")
)

func findSeed() string {
	if seed, found := os.LookupEnv("XKEY_SEED"); found {
		return seed
	}
	if b, err := os.ReadFile(seedPath); err == nil {
		return strings.TrimSpace(string(b))
	}
	return ""
}

func parseSeed(s string) ([]byte, error) {
	seed, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("seed is not hex: %w", err)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("seed is empty")
	}
	return seed, nil
}

func storeSeed(seed string) error {
	if _, err := parseSeed(seed); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(seedPath), 0700); err != nil {
		return err
	}
	return os.WriteFile(seedPath, []byte(strings.TrimSpace(seed)), 0600)
}
