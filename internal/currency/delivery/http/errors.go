package http

import (
	pkgErrors "travel-planner/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(110001, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(110002, "Wrong query")
)
