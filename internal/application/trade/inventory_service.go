package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/trade"
)

const auditPageSize = 100

// InventoryService explains cached stock counters through the documents that moved them
type InventoryService struct {
	productRepo  catalog.ProductRepository
	purchaseRepo trade.PurchaseRepository
	orderRepo    trade.OrderRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	productRepo catalog.ProductRepository,
	purchaseRepo trade.PurchaseRepository,
	orderRepo trade.OrderRepository,
) *InventoryService {
	return &InventoryService{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		orderRepo:    orderRepo,
	}
}

// Audit reports, for every active product, its stock next to the quantities
// of active purchases and orders. Opening is the stock the product must have
// started with for the counter to be consistent.
func (s *InventoryService) Audit(ctx context.Context, businessID uuid.UUID) (*StockAuditResponse, error) {
	purchased, err := s.purchaseRepo.ActiveQuantities(ctx, businessID)
	if err != nil {
		return nil, err
	}
	sold, err := s.orderRepo.ActiveQuantities(ctx, businessID)
	if err != nil {
		return nil, err
	}

	entries := make([]StockAuditEntry, 0)
	filter := shared.DefaultFilter()
	filter.PageSize = auditPageSize
	filter.OrderBy = "name"
	filter.OrderDir = "asc"
	for {
		products, err := s.productRepo.List(ctx, businessID, filter)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			in := purchased[p.ID]
			out := sold[p.ID]
			entries = append(entries, StockAuditEntry{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
				Purchased: in,
				Sold:      out,
				Opening:   p.Stock - in + out,
				Negative:  p.Stock < 0,
			})
		}
		if len(products) < filter.PageSize {
			break
		}
		filter.Page++
	}

	return &StockAuditResponse{
		BusinessID: businessID,
		Entries:    entries,
	}, nil
}
