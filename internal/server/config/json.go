package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/identcore/internal/flagx"
	"github.com/dmitrijs2005/identcore/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// both "30m" strings and integer nanoseconds. Absent keys leave the current
// value untouched.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	OpsAddr                     *string         `json:"ops_addr"`
	StorageBackend              *string         `json:"storage_backend"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	MongoURI                    *string         `json:"mongodb_url"`
	MongoDatabase               *string         `json:"mongodb_database"`
	MongoCollection             *string         `json:"mongodb_collection"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	PasswordHashCost            *int            `json:"password_hash_cost"`
	RevocationBackend           *string         `json:"revocation_backend"`
	RevocationCompactInterval   *timex.Duration `json:"revocation_compact_interval"`
	RedisAddr                   *string         `json:"redis_addr"`
	RedisPassword               *string         `json:"redis_password"`
	RedisDB                     *int            `json:"redis_db"`
	EmptySequencePolicy         *string         `json:"empty_sequence_policy"`
	LogBackend                  *string         `json:"log_backend"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c / -config. Without the
// flag nothing is loaded. An unreadable or malformed file panics, as the
// server cannot start with a half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.OpsAddr, c.OpsAddr)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.MongoCollection, c.MongoCollection)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.RevocationBackend, c.RevocationBackend)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	setString(&config.EmptySequencePolicy, c.EmptySequencePolicy)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RevocationCompactInterval != nil {
		config.RevocationCompactInterval = c.RevocationCompactInterval.Duration
	}
	if c.PasswordHashCost != nil {
		config.PasswordHashCost = *c.PasswordHashCost
	}
	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
