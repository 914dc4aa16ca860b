// Command admintoken prints an operator token for the dashboard.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/ukydev/trackpit/internal/auth"
	"github.com/ukydev/trackpit/internal/config"
	"github.com/ukydev/trackpit/internal/models"
)

func issue(out io.Writer, secret, subject, role string, expiry time.Duration) error {
	if subject == "" {
		return fmt.Errorf("--subject is required")
	}
	authService, err := auth.NewService(secret, expiry)
	if err != nil {
		return err
	}
	token, err := authService.GenerateToken(subject, models.Role(role))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}

func main() {
	subject := flag.String("subject", "", "operator name stored in the token")
	role := flag.String("role", string(models.RoleViewer), "operator role (admin or viewer)")
	expiry := flag.Duration("expiry", 0, "token lifetime (defaults to JWT_EXPIRY)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if *expiry == 0 {
		*expiry = cfg.JWTExpiry
	}

	if err := issue(os.Stdout, cfg.JWTSecret, *subject, *role, *expiry); err != nil {
		log.WithError(err).Fatal("Failed to issue token")
	}
}
