package pos

import (
	"github.com/jhoicas/pos-ledger/internal/application/dto"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
)

// SaleInputFromRequest traduce el body HTTP/CLI a la entrada del normalizador.
func SaleInputFromRequest(req dto.RecordSaleRequest) domainpos.SaleInput {
	items := make([]domainpos.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domainpos.SaleItemInput{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			Price:        it.Price,
			SellingPrice: it.SellingPrice,
		})
	}
	in := domainpos.SaleInput{
		TransactionID:  req.TransactionID,
		Timestamp:      req.Timestamp,
		Items:          items,
		PaymentMethod:  req.PaymentMethod,
		AmountReceived: req.AmountReceived,
		Salesperson:    req.Salesperson,
	}
	if req.Customer != nil {
		in.Customer = &domainpos.CustomerInput{Name: req.Customer.Name, Email: req.Customer.Email}
	}
	return in
}
