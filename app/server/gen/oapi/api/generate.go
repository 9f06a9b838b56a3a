package api

//go:generate go tool oapi-codegen -config cfg.yaml ../../../apidocs/openapi.yaml
