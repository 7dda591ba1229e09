// Package module holds the module contract and the process port registry
package module

import (
	phttp "readathon/internal/platform/net/http"
)

// Module is the contract the composition root asks of every service
// module. It sits in its own package so modules can share the contract
// without importing each other
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}
