package telegram

import (
	pkgErrors "travel-planner/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(150001, "Wrong body")

const (
	msgFailed = "Sorry, something went wrong while answering. Please try again."
	msgBusy   = "Sorry, this conversation belongs to someone else."
)
