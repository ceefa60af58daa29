package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/pos/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PurchaseService handles purchases and keeps product stock reconciled with
// them. Every write runs inside one transaction together with its stock
// adjustments.
type PurchaseService struct {
	purchaseRepo trade.PurchaseRepository
	txScope      TransactionScope
	stock        stockReporter
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(purchaseRepo trade.PurchaseRepository, txScope TransactionScope) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		txScope:      txScope,
		stock: stockReporter{
			docType: telemetry.DocumentTypePurchase,
			logger:  zap.NewNop(),
		},
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *PurchaseService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.stock.metrics = bm
}

// SetLogger sets the logger used for stock reconciliation messages
func (s *PurchaseService) SetLogger(logger *zap.Logger) {
	s.stock.logger = logger
}

// Create records a purchase and adds its quantities to stock
func (s *PurchaseService) Create(ctx context.Context, businessID uuid.UUID, req CreatePurchaseRequest) (_ *PurchaseResponse, err error) {
	ctx, span := s.stock.startSpan(ctx, "create", businessID, uuid.Nil)
	defer telemetry.EndSpan(span, &err)

	var (
		purchase *trade.Purchase
		applied  []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := requireActiveSupplier(ctx, repos.SupplierRepo(), businessID, req.SupplierID); err != nil {
			return err
		}
		lines, err := eligiblePurchaseLines(ctx, repos.ProductRepo(), businessID, req.Items)
		if err != nil {
			return err
		}

		p, err := trade.NewPurchase(businessID, req.SupplierID, lines)
		if err != nil {
			return err
		}
		p.Notes = req.Notes

		if err := repos.PurchaseRepo().Create(ctx, p); err != nil {
			return err
		}
		applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Inbound.OnCreate(p.Quantities()))
		if err != nil {
			return err
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stock.report(ctx, businessID, purchase.ID, reasonCreate, applied)
	if s.stock.metrics != nil {
		s.stock.metrics.RecordDocumentWithAmount(ctx, businessID, telemetry.DocumentTypePurchase, purchase.TotalCost)
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Get retrieves a purchase, active or trashed
func (s *PurchaseService) Get(ctx context.Context, businessID, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindOrThrow(ctx, businessID, purchaseID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Show retrieves a purchase for a page view; a missing purchase yields a ListRedirect
func (s *PurchaseService) Show(ctx context.Context, businessID, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindOrRedirect(ctx, businessID, purchaseID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves one page of purchases from the active or trash view
func (s *PurchaseService) List(ctx context.Context, businessID uuid.UUID, filter common.ListFilter) ([]PurchaseResponse, int64, error) {
	return common.ListPage[trade.Purchase](ctx, s.purchaseRepo, businessID, filter, ToPurchaseResponse)
}

// Update changes an active purchase. When the items change, stock moves by
// the item diff between the stored and the requested lines.
func (s *PurchaseService) Update(ctx context.Context, businessID, purchaseID uuid.UUID, req UpdatePurchaseRequest) (_ *PurchaseResponse, err error) {
	ctx, span := s.stock.startSpan(ctx, "update", businessID, purchaseID)
	defer telemetry.EndSpan(span, &err)

	var (
		purchase *trade.Purchase
		applied  []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PurchaseRepo().FindForUpdate(ctx, businessID, purchaseID)
		if err != nil {
			return err
		}
		if err := p.EnsureActive("Purchase"); err != nil {
			return err
		}

		if req.SupplierID != nil && *req.SupplierID != p.SupplierID {
			if err := requireActiveSupplier(ctx, repos.SupplierRepo(), businessID, *req.SupplierID); err != nil {
				return err
			}
			if err := p.ChangeSupplier(*req.SupplierID); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
			p.Touch()
		}

		old := p.Quantities()
		if req.Items != nil {
			lines, err := eligiblePurchaseLines(ctx, repos.ProductRepo(), businessID, req.Items)
			if err != nil {
				return err
			}
			if err := p.ReplaceItems(lines); err != nil {
				return err
			}
		}

		if err := repos.PurchaseRepo().Update(ctx, p); err != nil {
			return err
		}
		if req.Items != nil {
			if err := repos.PurchaseRepo().ReplaceItems(ctx, p); err != nil {
				return err
			}
			applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Inbound.OnUpdate(old, p.Quantities()))
			if err != nil {
				return err
			}
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stock.report(ctx, businessID, purchase.ID, reasonUpdate, applied)
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Remove trashes an active purchase and takes its quantities back out of
// stock, or permanently deletes a trashed one without touching stock.
func (s *PurchaseService) Remove(ctx context.Context, businessID, purchaseID uuid.UUID) (_ shared.RemoveResult, err error) {
	ctx, span := s.stock.startSpan(ctx, "remove", businessID, purchaseID)
	defer telemetry.EndSpan(span, &err)

	var (
		result  shared.RemoveResult
		applied []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		removed, err := repos.PurchaseRepo().Remove(ctx, businessID, purchaseID)
		if err != nil {
			return err
		}
		result = removed
		if removed != shared.SoftDeleted {
			return nil
		}
		// Items are read after the row is trashed so an update that
		// committed in between is reversed too.
		p, err := repos.PurchaseRepo().FindOrThrow(ctx, businessID, purchaseID)
		if err != nil {
			return err
		}
		applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Inbound.OnTrash(p.Quantities()))
		return err
	})
	if err != nil {
		return "", err
	}

	s.stock.report(ctx, businessID, purchaseID, reasonTrash, applied)
	return result, nil
}

// Restore brings a trashed purchase back and re-applies its quantities.
// Restoring an active purchase changes nothing.
func (s *PurchaseService) Restore(ctx context.Context, businessID, purchaseID uuid.UUID) (_ *PurchaseResponse, err error) {
	ctx, span := s.stock.startSpan(ctx, "restore", businessID, purchaseID)
	defer telemetry.EndSpan(span, &err)

	var (
		purchase *trade.Purchase
		applied  []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		restored, err := repos.PurchaseRepo().Restore(ctx, businessID, purchaseID)
		if err != nil {
			return err
		}
		p, err := repos.PurchaseRepo().FindOrThrow(ctx, businessID, purchaseID)
		if err != nil {
			return err
		}
		if restored {
			applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Inbound.OnRestore(p.Quantities()))
			if err != nil {
				return err
			}
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stock.report(ctx, businessID, purchaseID, reasonRestore, applied)
	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// PermanentRemove deletes a trashed purchase and its items. Stock was
// already reversed when the purchase was trashed.
func (s *PurchaseService) PermanentRemove(ctx context.Context, businessID, purchaseID uuid.UUID) error {
	return s.purchaseRepo.PermanentRemove(ctx, businessID, purchaseID)
}

// requireActiveSupplier checks that the supplier belongs to the business and is not trashed
func requireActiveSupplier(ctx context.Context, suppliers partner.SupplierRepository, businessID, supplierID uuid.UUID) error {
	supplier, err := suppliers.FindOrThrow(ctx, businessID, supplierID)
	if err != nil {
		return err
	}
	return supplier.EnsureActive("Supplier")
}

// eligiblePurchaseLines converts the request items and drops lines whose
// product does not belong to the business
func eligiblePurchaseLines(ctx context.Context, products catalog.ProductRepository, businessID uuid.UUID, items []PurchaseItemInput) ([]trade.PurchaseLine, error) {
	if len(items) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	owned, err := ownedProducts(ctx, products, businessID, ids)
	if err != nil {
		return nil, err
	}

	kept := inventory.FilterOwned(items, owned, func(item PurchaseItemInput) uuid.UUID { return item.ProductID })
	lines := make([]trade.PurchaseLine, len(kept))
	for i, item := range kept {
		lines[i] = trade.PurchaseLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Cost:      item.Cost,
		}
	}
	return lines, nil
}
