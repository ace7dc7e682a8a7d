package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/safekey/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-k string   database driver: pgx or sqlite
//	-d string   database DSN
//	-o int      OTP validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint; empty keeps blobs in memory
//
// Arguments are filtered through flagx.FilterArgs first so -c / -config and
// flags owned by other packages do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-o", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "k", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	otpValidity := fs.Int("o", int(config.OTPValidity.Minutes()), "otp challenge validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			config.OTPValidity = time.Duration(*otpValidity) * time.Minute
		}
	})
}
