package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Each helper reads through viper so a key may come from a flag, the
// environment, or the config file. Unusable values fall back to the default.

func envOrDefault(v *viper.Viper, key, defaultValue string) string {
	val := strings.TrimSpace(v.GetString(key))
	if val != "" {
		return val
	}
	return defaultValue
}

func intEnvOrDefault(v *viper.Viper, key string, defaultValue int) int {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(v *viper.Viper, key string, defaultValue bool) bool {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

func listEnvOrDefault(v *viper.Viper, key, defaultValue string) []string {
	raw := envOrDefault(v, key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{defaultValue}
	}
	return out
}
