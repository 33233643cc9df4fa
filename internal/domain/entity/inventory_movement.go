package entity

import "time"

// InventoryMovement cambio de stock asociado a una venta (colección posInventoryMovements).
// Delta es negativo en salidas; ResultingStock nunca es negativo.
type InventoryMovement struct {
	ID             string    `json:"id"`
	SaleID         string    `json:"saleId"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName,omitempty"`
	Quantity       int       `json:"quantity"`
	Delta          int       `json:"delta"`
	ResultingStock int       `json:"resultingStock"`
	Timestamp      time.Time `json:"timestamp"`
}
