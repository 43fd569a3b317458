package models

// Payment is a single transaction record as returned by the upstream
// reporting API. Amount arrives as a decimal string and is only parsed
// at aggregation time.
type Payment struct {
	PaymentCode string `json:"paymentCode"`
	MchtCode    string `json:"mchtCode"`
	MchtName    string `json:"mchtName,omitempty"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	PayType     string `json:"payType"`
	Status      string `json:"status"`
	PaymentAt   string `json:"paymentAt"`
}

// Payment lifecycle statuses. The set is owned by the upstream API;
// unknown codes still bucket correctly and only lose their label.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusSuccess   = "SUCCESS"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusCancelled = "CANCELLED"
	PaymentStatusRefunded  = "REFUNDED"
)

const (
	PayTypeOnline  = "ONLINE"
	PayTypeDevice  = "DEVICE"
	PayTypeMobile  = "MOBILE"
	PayTypeVact    = "VACT"
	PayTypeBilling = "BILLING"
)

// MerchantLabel returns the display name for the payment's merchant,
// falling back to the merchant code when no name is set.
func (p Payment) MerchantLabel() string {
	if p.MchtName != "" {
		return p.MchtName
	}
	return p.MchtCode
}
