package model

import (
	"encoding/json"
	"time"

	"github.com/hoangtm/restaurant-ordering/constant"
)

// OrderRequest is the raw order-creation payload. Items is kept unparsed
// because callers send it as a JSON array, a single object, or a JSON-encoded
// string; address codes use FlexString because the chatbot sends them as
// either strings or numbers.
type OrderRequest struct {
	UserID  string          `json:"userId"`
	Channel string          `json:"-"`
	Items   json.RawMessage `json:"items"`
	Total   FlexFloat       `json:"total"`
	Note    string          `json:"note"`

	ProvinceCode FlexString `json:"provinceCode"`
	ProvinceName string     `json:"provinceName"`
	DistrictCode FlexString `json:"districtCode"`
	DistrictName string     `json:"districtName"`
	WardCode     FlexString `json:"wardCode"`
	WardName     string     `json:"wardName"`
	Street       string     `json:"street"`
}

func (r *OrderRequest) AddressInput() *AddressInput {
	return &AddressInput{
		ProvinceCode: r.ProvinceCode.String(),
		ProvinceName: r.ProvinceName,
		DistrictCode: r.DistrictCode.String(),
		DistrictName: r.DistrictName,
		WardCode:     r.WardCode.String(),
		WardName:     r.WardName,
	}
}

// RawLineItem is one untyped line item as supplied by the caller. Exactly one
// of the reference shapes is expected; the classifier decides which.
type RawLineItem struct {
	ProductID FlexString `json:"productId"`
	ComboID   FlexString `json:"comboId"`
	ID        FlexString `json:"id"`
	Type      string     `json:"type"`
	Quantity  FlexFloat  `json:"quantity"`
	Price     FlexFloat  `json:"price"`
}

// LineItemRef is a classified line item: exactly one of ProductID/ComboID is
// set and the referenced entity existed (not soft-deleted) at classification
// time.
type LineItemRef struct {
	ProductID string  `db:"product_id" json:"product_id,omitempty"`
	ComboID   string  `db:"combo_id" json:"combo_id,omitempty"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}

func (l LineItemRef) IsCombo() bool {
	return l.ComboID != ""
}

// OrderEntity is the order header row. Address fields are denormalized at
// creation time and not re-resolved afterwards.
type OrderEntity struct {
	ID            string                 `db:"id"`
	OrderNumber   int64                  `db:"order_number"`
	OrderCode     string                 `db:"order_code"`
	UserID        string                 `db:"user_id"`
	Total         float64                `db:"total"`
	Status        constant.OrderStatus   `db:"status"`
	PaymentStatus constant.PaymentStatus `db:"payment_status"`
	Channel       string                 `db:"channel"`
	Note          string                 `db:"note"`
	Street        string                 `db:"street"`
	Address       AddressReference
	CreatedAt     time.Time `db:"created_at"`
}

type OrderResponse struct {
	OrderID     string           `json:"order_id"`
	OrderCode   string           `json:"order_code"`
	OrderNumber int64            `json:"order_number"`
	Total       float64          `json:"total"`
	Status      string           `json:"status"`
	Items       []LineItemRef    `json:"items"`
	Address     AddressReference `json:"address"`
	CreatedAt   time.Time        `json:"created_at"`
}
