package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/identcore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-o string   ops HTTP bind address (metrics, health)
//	-b string   storage backend: postgres, mongo or memory
//	-d string   PostgreSQL DSN
//	-m string   MongoDB URL
//	-s string   session token HMAC secret
//	-t int      session token validity, minutes
//	-r string   redis address (enables the redis revocation backend)
//	-l string   log level
//
// Only these flags are looked at, so other layers (-c, -env) can share os.Args.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-b", "-d", "-m", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.OpsAddr, "o", config.OpsAddr, "address and port of the ops endpoint")
	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "mongodb url")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	redisAddr := fs.String("r", "", "redis address for the revocation set")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	if *redisAddr != "" {
		config.RedisAddr = *redisAddr
		config.RevocationBackend = RevocationBackendRedis
	}
}
