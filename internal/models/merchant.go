package models

// Merchant is a merchant list entry. TransactionCount and TotalAmount
// are not part of the upstream record; they are derived per request by
// joining the payment set against the merchant code.
type Merchant struct {
	MchtCode         string  `json:"mchtCode"`
	MchtName         string  `json:"mchtName"`
	Status           string  `json:"status"`
	BizType          string  `json:"bizType"`
	TransactionCount int     `json:"transactionCount"`
	TotalAmount      float64 `json:"totalAmount"`
}

// MerchantDetail is the full merchant profile from the detail endpoint.
type MerchantDetail struct {
	MchtCode     string `json:"mchtCode"`
	MchtName     string `json:"mchtName"`
	Status       string `json:"status"`
	BizType      string `json:"bizType"`
	BizNo        string `json:"bizNo"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
	UpdatedAt    string `json:"updatedAt"`
}

const (
	MerchantStatusActive   = "ACTIVE"
	MerchantStatusInactive = "INACTIVE"
	MerchantStatusReady    = "READY"
	MerchantStatusClosed   = "CLOSED"
)
