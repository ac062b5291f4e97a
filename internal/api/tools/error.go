package tools

import (
	"camonk/pkg/response"
	"net/http"
)

var (
	ErrInvalidIncome = response.NewError(http.StatusBadRequest, "income must be a non-negative number")
)
