// login-probe logs in against the backend, stores the token pair, and prints
// the resolved user and token expiry. Useful for smoke-testing a deployment
// and for seeding the token file other commands read.
//
// Usage:
//   PULSE_API_BASE_URL=... go run ./cmd/login-probe <email> <password>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/session"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: login-probe <email> <password>")
		os.Exit(2)
	}

	cfg := config.Load()
	logger := config.GetLogger()
	store := session.NewFileTokenStore(cfg.TokenPath)
	api := gateway.NewClient(cfg, store)
	sess := session.New(api, store, logger)

	ctx := context.Background()
	result := sess.Login(ctx, os.Args[1], os.Args[2])
	if !result.Success {
		fmt.Fprintf(os.Stderr, "login failed: %s\n", result.Error)
		os.Exit(1)
	}

	user := result.User
	fmt.Printf("logged in as %s %s <%s> role=%s\n", user.FirstName, user.LastName, user.Email, user.Role)
	if expires, ok := sess.TokenExpiresAt(); ok {
		fmt.Printf("access token expires at %s\n", expires.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Printf("tokens stored in %s\n", cfg.TokenPath)
}
