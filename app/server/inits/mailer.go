package inits

import (
	"fmt"

	"atelier-site-core/app/server/config"
	"atelier-site-core/app/server/mailer"
)

func Mailer(cfg *config.Config) (*mailer.Mailer, error) {
	m, err := mailer.New(mailer.Config{
		Host:      cfg.Mail.SMTPHost,
		Port:      cfg.Mail.SMTPPort,
		Username:  cfg.Mail.SMTPUser,
		Password:  cfg.Mail.SMTPPass,
		FromEmail: cfg.Mail.FromEmail,
		FromName:  cfg.Mail.FromName,
	})
	if err != nil {
		return nil, fmt.Errorf("init mailer: %w", err)
	}

	return m, nil
}
