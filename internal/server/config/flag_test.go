package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-o", ":9191", "-b", "mongo", "-d", "db", "-m", "mongodb://m:27017",
			"-s", "secret", "-t", "5", "-r", "redis:6380", "-l", "debug",
		},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				OpsAddr:                     ":9191",
				StorageBackend:              "mongo",
				DatabaseDSN:                 "db",
				MongoURI:                    "mongodb://m:27017",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 5 * time.Minute,
				RedisAddr:                   "redis:6380",
				RevocationBackend:           RevocationBackendRedis,
				LogLevel:                    "debug",
			}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-env", ".env", "-t", "2"},
			expected: &Config{
				AccessTokenValidityDuration: 2 * time.Minute,
			}},
		{name: "bad ttl panics", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
