//go:build wireinject

package main

import (
	"github.com/google/wire"

	"chat-api/internal/domain"
	"chat-api/internal/infrastructure"
	"chat-api/internal/interfaces"
	"chat-api/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
