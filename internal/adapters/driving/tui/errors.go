package tui

import "errors"

// ErrMissingChartService is returned when the chart service is not provided.
var ErrMissingChartService = errors.New("tui: chart service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// ErrNoChart is returned when the app was started without an input or a
// saved chart ID.
var ErrNoChart = errors.New("tui: no chart to display")
