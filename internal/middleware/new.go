package middleware

import (
	"strings"

	"market-intel-srv/config"
	"market-intel-srv/pkg/log"
	"market-intel-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	internalKey  string
	adminEmails  map[string]struct{}
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internalKey string, adminEmails []string) Middleware {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		emails[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
		adminEmails:  emails,
	}
}
