// Package config provides the generator configuration: the rule table that
// maps target annotations to registry keys, plus matching and output
// options. Values come from viper (config file, AUTO_FACTORIES_* env,
// flags) layered over Default().
package config

import (
	"strings"

	"github.com/spf13/viper"

	"auto-factories/internal/match"
	"auto-factories/internal/registry"
)

// EnvPrefix is the prefix for environment overrides, e.g. AUTO_FACTORIES_DEBUG.
const EnvPrefix = "AUTO_FACTORIES"

// Well-known annotations and registry keys.
const (
	ConfigurationAnnotation = "org.springframework.context.annotation.Configuration"
	FeignClientAnnotation   = "org.springframework.cloud.openfeign.FeignClient"
	AutoConfigureKey        = "org.springframework.boot.autoconfigure.EnableAutoConfiguration"
	FeignAutoConfigureKey   = "net.dreamlu.mica.feign.MicaFeignAutoConfiguration"
)

// Rule maps a target annotation to the registry key its implementors go under.
type Rule struct {
	// Annotation is the fully-qualified target annotation name.
	Annotation string `mapstructure:"annotation"`
	// Key is the registry key.
	Key string `mapstructure:"key"`
	// RequireInterface rejects matched classes with a validation error.
	RequireInterface bool `mapstructure:"require_interface"`
}

// Config holds all configuration options for a generation run.
type Config struct {
	Rules []Rule `mapstructure:"rules"`
	// BaseNamespaces are annotation name prefixes the matcher does not enter.
	BaseNamespaces []string `mapstructure:"base_namespaces"`
	// MaxDepth caps meta-annotation nesting (0 = no cap).
	MaxDepth int `mapstructure:"max_depth"`
	// Dedup is "global" or "per-key".
	Dedup string `mapstructure:"dedup"`
	// Continuation renders one implementor per registry line.
	Continuation bool `mapstructure:"continuation"`
	// Manifest is the element manifest path.
	Manifest string `mapstructure:"manifest"`
	// Output is the build output root, e.g. build/classes/java/main.
	Output string `mapstructure:"output"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug"`
}

// DefaultRules returns the built-in rule table. Order matters: the first
// rule whose annotation matches an element decides its key.
func DefaultRules() []Rule {
	return []Rule{
		{Annotation: ConfigurationAnnotation, Key: AutoConfigureKey},
		{Annotation: FeignClientAnnotation, Key: FeignAutoConfigureKey, RequireInterface: true},
	}
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Rules:          DefaultRules(),
		BaseNamespaces: append([]string(nil), match.DefaultBaseNamespaces...),
		MaxDepth:       match.DefaultMaxDepth,
		Dedup:          registry.DedupGlobal.String(),
		Output:         "build/classes/java/main",
	}
}

// SetDefaults registers default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("rules", defaults.Rules)
	v.SetDefault("base_namespaces", defaults.BaseNamespaces)
	v.SetDefault("max_depth", defaults.MaxDepth)
	v.SetDefault("dedup", defaults.Dedup)
	v.SetDefault("continuation", defaults.Continuation)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("debug", defaults.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v into a Config struct and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// MatchOptions returns the matcher options.
func (c *Config) MatchOptions() match.Options {
	return match.Options{
		BaseNamespaces: c.BaseNamespaces,
		MaxDepth:       c.MaxDepth,
	}
}

// DedupMode returns the parsed dedup mode. Validate reports bad values.
func (c *Config) DedupMode() registry.DedupMode {
	mode, _ := registry.ParseDedupMode(c.Dedup)
	return mode
}

// FormatOptions returns the serializer options.
func (c *Config) FormatOptions() registry.FormatOptions {
	return registry.FormatOptions{Continuation: c.Continuation}
}

// Annotations returns the target annotation names in rule order.
func (c *Config) Annotations() []string {
	out := make([]string, 0, len(c.Rules))
	for _, r := range c.Rules {
		out = append(out, r.Annotation)
	}

	return out
}
