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

// OrderService handles orders and keeps product stock reconciled with
// them. Orders move stock in the opposite direction of purchases. Every
// write runs inside one transaction together with its stock adjustments.
type OrderService struct {
	orderRepo trade.OrderRepository
	txScope   TransactionScope
	stock     stockReporter
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, txScope TransactionScope) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
		stock: stockReporter{
			docType: telemetry.DocumentTypeOrder,
			logger:  zap.NewNop(),
		},
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *OrderService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.stock.metrics = bm
}

// SetLogger sets the logger used for stock reconciliation messages
func (s *OrderService) SetLogger(logger *zap.Logger) {
	s.stock.logger = logger
}

// Create records an order and takes its quantities out of stock
func (s *OrderService) Create(ctx context.Context, businessID uuid.UUID, req CreateOrderRequest) (_ *OrderResponse, err error) {
	ctx, span := s.stock.startSpan(ctx, "create", businessID, uuid.Nil)
	defer telemetry.EndSpan(span, &err)

	var (
		order   *trade.Order
		applied []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := requireActiveCustomer(ctx, repos.CustomerRepo(), businessID, req.CustomerID); err != nil {
			return err
		}
		lines, err := eligibleOrderLines(ctx, repos.ProductRepo(), businessID, req.Items)
		if err != nil {
			return err
		}

		o, err := trade.NewOrder(businessID, req.CustomerID, lines)
		if err != nil {
			return err
		}
		o.Notes = req.Notes

		if err := repos.OrderRepo().Create(ctx, o); err != nil {
			return err
		}
		applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Outbound.OnCreate(o.Quantities()))
		if err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stock.report(ctx, businessID, order.ID, reasonCreate, applied)
	if s.stock.metrics != nil {
		s.stock.metrics.RecordDocumentWithAmount(ctx, businessID, telemetry.DocumentTypeOrder, order.TotalPrice)
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Get retrieves a order, active or trashed
func (s *OrderService) Get(ctx context.Context, businessID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindOrThrow(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// Show retrieves a order for a page view; a missing order yields a ListRedirect
func (s *OrderService) Show(ctx context.Context, businessID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindOrRedirect(ctx, businessID, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves one page of orders from the active or trash view
func (s *OrderService) List(ctx context.Context, businessID uuid.UUID, filter common.ListFilter) ([]OrderResponse, int64, error) {
	return common.ListPage[trade.Order](ctx, s.orderRepo, businessID, filter, ToOrderResponse)
}

// Update changes an active order. When the items change, stock moves by
// the item diff between the stored and the requested lines.
func (s *OrderService) Update(ctx context.Context, businessID, orderID uuid.UUID, req UpdateOrderRequest) (_ *OrderResponse, err error) {
	ctx, span := s.stock.startSpan(ctx, "update", businessID, orderID)
	defer telemetry.EndSpan(span, &err)

	var (
		order   *trade.Order
		applied []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.OrderRepo().FindForUpdate(ctx, businessID, orderID)
		if err != nil {
			return err
		}
		if err := o.EnsureActive("Order"); err != nil {
			return err
		}

		if req.CustomerID != nil && *req.CustomerID != o.CustomerID {
			if err := requireActiveCustomer(ctx, repos.CustomerRepo(), businessID, *req.CustomerID); err != nil {
				return err
			}
			if err := o.ChangeCustomer(*req.CustomerID); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			o.Notes = *req.Notes
			o.Touch()
		}

		old := o.Quantities()
		if req.Items != nil {
			lines, err := eligibleOrderLines(ctx, repos.ProductRepo(), businessID, req.Items)
			if err != nil {
				return err
			}
			if err := o.ReplaceItems(lines); err != nil {
				return err
			}
		}

		if err := repos.OrderRepo().Update(ctx, o); err != nil {
			return err
		}
		if req.Items != nil {
			if err := repos.OrderRepo().ReplaceItems(ctx, o); err != nil {
				return err
			}
			applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Outbound.OnUpdate(old, o.Quantities()))
			if err != nil {
				return err
			}
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stock.report(ctx, businessID, order.ID, reasonUpdate, applied)
	response := ToOrderResponse(order)
	return &response, nil
}

// Remove trashes an active order and returns its quantities to stock, or
// permanently deletes a trashed one without touching stock.
func (s *OrderService) Remove(ctx context.Context, businessID, orderID uuid.UUID) (_ shared.RemoveResult, err error) {
	ctx, span := s.stock.startSpan(ctx, "remove", businessID, orderID)
	defer telemetry.EndSpan(span, &err)

	var (
		result  shared.RemoveResult
		applied []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		removed, err := repos.OrderRepo().Remove(ctx, businessID, orderID)
		if err != nil {
			return err
		}
		result = removed
		if removed != shared.SoftDeleted {
			return nil
		}
		// Items are read after the row is trashed so an update that
		// committed in between is reversed too.
		o, err := repos.OrderRepo().FindOrThrow(ctx, businessID, orderID)
		if err != nil {
			return err
		}
		applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Outbound.OnTrash(o.Quantities()))
		return err
	})
	if err != nil {
		return "", err
	}

	s.stock.report(ctx, businessID, orderID, reasonTrash, applied)
	return result, nil
}

// Restore brings a trashed order back and takes its quantities out of stock again.
// Restoring an active order changes nothing.
func (s *OrderService) Restore(ctx context.Context, businessID, orderID uuid.UUID) (_ *OrderResponse, err error) {
	ctx, span := s.stock.startSpan(ctx, "restore", businessID, orderID)
	defer telemetry.EndSpan(span, &err)

	var (
		order   *trade.Order
		applied []inventory.Adjustment
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		restored, err := repos.OrderRepo().Restore(ctx, businessID, orderID)
		if err != nil {
			return err
		}
		o, err := repos.OrderRepo().FindOrThrow(ctx, businessID, orderID)
		if err != nil {
			return err
		}
		if restored {
			applied, err = applyPlan(ctx, repos.ProductRepo(), businessID, inventory.Outbound.OnRestore(o.Quantities()))
			if err != nil {
				return err
			}
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stock.report(ctx, businessID, orderID, reasonRestore, applied)
	response := ToOrderResponse(order)
	return &response, nil
}

// PermanentRemove deletes a trashed order and its items. Stock was
// already returned when the order was trashed.
func (s *OrderService) PermanentRemove(ctx context.Context, businessID, orderID uuid.UUID) error {
	return s.orderRepo.PermanentRemove(ctx, businessID, orderID)
}

// requireActiveCustomer checks that the customer belongs to the business and is not trashed
func requireActiveCustomer(ctx context.Context, customers partner.CustomerRepository, businessID, customerID uuid.UUID) error {
	customer, err := customers.FindOrThrow(ctx, businessID, customerID)
	if err != nil {
		return err
	}
	return customer.EnsureActive("Customer")
}

// eligibleOrderLines converts the request items and drops lines whose
// product does not belong to the business
func eligibleOrderLines(ctx context.Context, products catalog.ProductRepository, businessID uuid.UUID, items []OrderItemInput) ([]trade.OrderLine, error) {
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

	kept := inventory.FilterOwned(items, owned, func(item OrderItemInput) uuid.UUID { return item.ProductID })
	lines := make([]trade.OrderLine, len(kept))
	for i, item := range kept {
		lines[i] = trade.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Tax:       item.Tax,
		}
	}
	return lines, nil
}
