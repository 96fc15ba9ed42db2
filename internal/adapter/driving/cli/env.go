package cli

import (
	"os"
	"strconv"
	"strings"
)

// Os valores REWARDS_* (inclusive os vindos do .env) só definem os padrões
// das flags; a linha de comando e o arquivo de configuração prevalecem.

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func envSlice(key string, def []string) []string {
	v := envString(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(envString(key, "")); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(envString(key, "")); err == nil {
		return b
	}
	return def
}
