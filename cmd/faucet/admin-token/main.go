// Command admin-token prints a signed admin bearer token for the counter
// overwrite endpoint, using the secret from the faucet configuration.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/rbt-faucet/pkg/auth"
	"github.com/chainsafe/rbt-faucet/pkg/config"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	subject := flag.String("subject", "operator", "Subject (sub claim) of the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading configuration file: %v\n", err)
		os.Exit(1)
	}

	v := auth.NewJWTValidator(cfg.Admin.JWTSecret, cfg.Admin.Issuer)
	token, err := v.IssueToken(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error issuing token: %v (set admin.jwt_secret or %s)\n", err, config.EnvAdminJWTSecret)
		os.Exit(1)
	}
	fmt.Println(token)
}
