package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Desc      string          `json:"desc"`
	Sku       string          `json:"sku"`
	CreatedAt time.Time       `json:"createdAt"`
	// Stock is recorded at creation and not decremented by sales.
	Stock int `json:"stock"`
}
