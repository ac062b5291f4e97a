package tools

type IncomeTaxRequest struct {
	Income *float64 `json:"income" validate:"required,gte=0"`
}

type IncomeTaxResponse struct {
	Income       float64 `json:"income"`
	Tax          float64 `json:"tax"`
	FormattedTax string  `json:"formattedTax"`
}
