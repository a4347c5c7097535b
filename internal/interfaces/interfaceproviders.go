package interfaces

import (
	"github.com/google/wire"

	"chat-api/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHTTPServer,
)
