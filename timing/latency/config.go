// Package latency holds the simulator's cache and miss-penalty
// configuration: JSON load/save of the icache and dcache parameters (each
// with its own miss penalty), plus the multiplier/divider stall durations.
package latency

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Eltaras202/mipspipe-sim/timing/cache"
)

// Config holds every cycle-count parameter the pipeline controller and
// execute stage need beyond what the cache package itself derives.
type Config struct {
	// ICache configures the instruction cache.
	ICache cache.Config `json:"icache"`

	// DCache configures the data cache.
	DCache cache.Config `json:"dcache"`

	// MultStall is the number of cycles MULT/MULTU holds HI/LO unready.
	MultStall int `json:"mult_stall"`

	// DivStall is the number of cycles DIV/DIVU holds HI/LO unready.
	DivStall int `json:"div_stall"`
}

// DefaultConfig returns the reference simulator's configuration: 4-way
// 32-byte-block caches (8 KiB icache, 64 KiB dcache), RANDOM replacement
// with MRU insertion, 50-cycle miss penalty, 4-cycle MULT stall, 32-cycle
// DIV stall.
func DefaultConfig() *Config {
	return &Config{
		ICache:    cache.DefaultICacheConfig(),
		DCache:    cache.DefaultDCacheConfig(),
		MultStall: 4,
		DivStall:  32,
	}
}

// LoadConfig loads a Config from a JSON file, starting from DefaultConfig
// so an omitted field keeps its reference default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("latency: failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("latency: failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("latency: failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("latency: failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the cache and stall parameters are usable. Cache
// geometry errors (non-power-of-two set count, sub-word block size) are
// caught here rather than left to panic inside cache.New.
func (c *Config) Validate() error {
	for name, cfg := range map[string]cache.Config{"icache": c.ICache, "dcache": c.DCache} {
		if cfg.Associativity <= 0 {
			return fmt.Errorf("latency: %s: associativity must be positive", name)
		}
		if cfg.BlockSize < 4 || cfg.BlockSize%4 != 0 || cfg.BlockSize&(cfg.BlockSize-1) != 0 {
			return fmt.Errorf("latency: %s: block size must be a power of two multiple of 4", name)
		}
		if cfg.Size%(cfg.BlockSize*cfg.Associativity) != 0 {
			return fmt.Errorf("latency: %s: size must divide evenly into block_size*associativity sets", name)
		}
		if sets := cfg.Size / (cfg.BlockSize * cfg.Associativity); sets <= 0 || sets&(sets-1) != 0 {
			return fmt.Errorf("latency: %s: number of sets must be a positive power of two", name)
		}
		if cfg.MissPenalty <= 0 {
			return fmt.Errorf("latency: %s: miss_penalty must be > 0", name)
		}
	}
	if c.MultStall <= 0 {
		return fmt.Errorf("latency: mult_stall must be > 0")
	}
	if c.DivStall <= 0 {
		return fmt.Errorf("latency: div_stall must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
