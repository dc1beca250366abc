package cli

import (
	stderrors "errors"
	"io/fs"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cycl/pkg/errors"
	"github.com/matzehuels/cycl/pkg/graph"
)

// Config is the optional TOML configuration file.
//
//	region = "eu-west-1"
//	cdk_out = "infra/cdk.out"
//	ignore_nodes = ["bootstrap"]
//	ignore_edges = [["network", "shared"]]
type Config struct {
	Region          string     `toml:"region"`
	Profile         string     `toml:"profile"`
	CdkOut          string     `toml:"cdk_out"`
	Workers         int        `toml:"workers"`
	MaxAttempts     int        `toml:"max_attempts"`
	IgnoreNodes     []string   `toml:"ignore_nodes"`
	IgnoreEdges     [][]string `toml:"ignore_edges"`
	RemoveSelfLoops bool       `toml:"remove_self_loops"`
	FailFast        bool       `toml:"fail_fast"`
}

// loadConfig reads the config at path. An empty path falls back to
// configFileName in the working directory, which may be absent.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return stderrors.New("workers must not be negative")
	}
	if c.MaxAttempts < 0 {
		return stderrors.New("max_attempts must not be negative")
	}
	for _, e := range c.IgnoreEdges {
		if len(e) != 2 {
			return stderrors.New("ignore_edges entries must be [from, to] pairs")
		}
	}
	return nil
}

// ignoreEdges returns the configured edge pairs.
func (c Config) ignoreEdges() []graph.Pair {
	pairs := make([]graph.Pair, 0, len(c.IgnoreEdges))
	for _, e := range c.IgnoreEdges {
		pairs = append(pairs, graph.Pair{From: e[0], To: e[1]})
	}
	return pairs
}

// union appends the values of b missing from a.
func union[T comparable](a, b []T) []T {
	out := slices.Clone(a)
	for _, v := range b {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
