package assistant

import (
	"camonk/pkg/response"
	"net/http"
)

var (
	ErrTitleRequired    = response.NewError(http.StatusBadRequest, "Please enter a title first.")
	ErrGenerationFailed = response.NewError(http.StatusBadGateway, "AI content generation failed. Please check your API key.")
)
