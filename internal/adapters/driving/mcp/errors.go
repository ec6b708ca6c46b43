// Package mcp provides an MCP (Model Context Protocol) server adapter for ziwei.
// It lets AI assistants build natal charts and read the saved chart history.
package mcp

import "errors"

// ErrMissingChartService is returned when the chart service is not provided.
var ErrMissingChartService = errors.New("mcp: chart service is required")
