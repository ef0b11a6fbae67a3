package handler

import (
	admindomain "mealpoll-go/internal/domain/admin"
	catalogdomain "mealpoll-go/internal/domain/catalog"
	exportdomain "mealpoll-go/internal/domain/export"
	mealdomain "mealpoll-go/internal/domain/meal"
	responsedomain "mealpoll-go/internal/domain/response"
	"mealpoll-go/internal/transport/httpserver/middleware"
	"mealpoll-go/pkg/logger"
)

type Handlers struct {
	Catalog   *catalogdomain.Service
	Meals     *mealdomain.Service
	Responses *responsedomain.Service
	Admins    *admindomain.Service
	Exports   *exportdomain.Service

	auth       *middleware.SessionAuth
	cookieName string
	secure     bool
	log        logger.Logger
}

func New(
	catalog *catalogdomain.Service,
	meals *mealdomain.Service,
	responses *responsedomain.Service,
	admins *admindomain.Service,
	exports *exportdomain.Service,
	auth *middleware.SessionAuth,
	cookieName string,
	secureCookies bool,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Catalog:    catalog,
		Meals:      meals,
		Responses:  responses,
		Admins:     admins,
		Exports:    exports,
		auth:       auth,
		cookieName: cookieName,
		secure:     secureCookies,
		log:        log,
	}
}
