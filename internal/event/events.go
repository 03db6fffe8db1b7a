package event

import "github.com/tuanvumaihuynh/pos/internal/model"

const (
	TopicProductCreated = "product.created"
	TopicSaleFinalized  = "sale.finalized"
)

type ProductCreatedEvent struct {
	Product model.Product
}

type SaleFinalizedEvent struct {
	Sale model.Sale
}
