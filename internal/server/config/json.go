package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/safekey/internal/flagx"
	"github.com/dmitrijs2005/safekey/internal/timex"
)

// JsonConfig mirrors Config for decoding JSON files. OTPValidity accepts
// either a duration string ("5m") or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDriver   string         `json:"database_driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	OTPValidity      timex.Duration `json:"otp_validity"`
	S3RootUser       string         `json:"s3_root_user"`
	S3RootPassword   string         `json:"s3_root_password"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the file named by -c / -config.
//
// Only keys present in the file replace the current values. A missing
// flag leaves config untouched; an unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := JsonConfig{
		EndpointAddrGRPC: config.EndpointAddrGRPC,
		DatabaseDriver:   config.DatabaseDriver,
		DatabaseDSN:      config.DatabaseDSN,
		OTPValidity:      timex.Duration{Duration: config.OTPValidity},
		S3RootUser:       config.S3RootUser,
		S3RootPassword:   config.S3RootPassword,
		S3Bucket:         config.S3Bucket,
		S3Region:         config.S3Region,
		S3BaseEndpoint:   config.S3BaseEndpoint,
	}
	if err := json.Unmarshal(file, &c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDriver = c.DatabaseDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.OTPValidity = c.OTPValidity.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
