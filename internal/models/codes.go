package models

// StatusCode maps a payment or merchant status code to its human label.
type StatusCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PayTypeCode maps a payment method code to its human label.
type PayTypeCode struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// PaymentCodes bundles the label tables the payment pages need.
type PaymentCodes struct {
	Statuses []StatusCode  `json:"statuses"`
	PayTypes []PayTypeCode `json:"payTypes"`
}
