package main

import (
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/stretchr/testify/require"
)

// сервис не должен падать на старте из-за отсутствующего описания api
func TestSwaggerSpecServed(t *testing.T) {
	require.FileExists(t, "docs/swagger.json")
	require.NotPanics(t, func() {
		swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: "./docs/swagger.json",
		})
	})
}
