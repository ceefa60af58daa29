package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Stock adjustment reasons, used for logging and metrics
const (
	reasonCreate  = "create"
	reasonUpdate  = "update"
	reasonTrash   = "trash"
	reasonRestore = "restore"
)

// ownedProducts returns the subset of ids that name products of the business.
// Trashed products count as owned; permanently deleted or foreign ones do not.
func ownedProducts(ctx context.Context, products catalog.ProductRepository, businessID uuid.UUID, ids []uuid.UUID) (inventory.OwnedSet, error) {
	found, err := products.FindByIDs(ctx, businessID, ids)
	if err != nil {
		return nil, err
	}
	owned := make([]uuid.UUID, len(found))
	for i := range found {
		owned[i] = found[i].ID
	}
	return inventory.NewOwnedSet(owned...), nil
}

// applyPlan runs the adjustments against the product table, in plan order.
// Adjustments for products that no longer exist in the business are skipped.
func applyPlan(ctx context.Context, products catalog.ProductRepository, businessID uuid.UUID, plan []inventory.Adjustment) ([]inventory.Adjustment, error) {
	if len(plan) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(plan))
	for i, adj := range plan {
		ids[i] = adj.ProductID
	}
	owned, err := ownedProducts(ctx, products, businessID, ids)
	if err != nil {
		return nil, err
	}

	applied := make([]inventory.Adjustment, 0, len(plan))
	for _, adj := range plan {
		if !owned.Contains(adj.ProductID) {
			continue
		}
		if err := products.AdjustStock(ctx, businessID, adj.ProductID, adj.Delta); err != nil {
			return nil, err
		}
		applied = append(applied, adj)
	}
	return applied, nil
}

// stockReporter logs and counts committed stock adjustments
type stockReporter struct {
	docType telemetry.DocumentType
	metrics *telemetry.BusinessMetrics
	logger  *zap.Logger
}

// startSpan opens the span around one document write, e.g. "purchase.update"
func (r *stockReporter) startSpan(ctx context.Context, method string, businessID, documentID uuid.UUID) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String(telemetry.SpanAttrBusinessID, businessID.String())}
	if documentID != uuid.Nil {
		attrs = append(attrs, attribute.String(telemetry.SpanAttrDocumentID, documentID.String()))
	}
	return telemetry.StartServiceSpan(ctx, string(r.docType), method, attrs...)
}

func (r *stockReporter) report(ctx context.Context, businessID, documentID uuid.UUID, reason string, applied []inventory.Adjustment) {
	if len(applied) == 0 {
		return
	}
	telemetry.AddEvent(ctx, "stock_reconciled",
		attribute.String(telemetry.SpanAttrDocumentID, documentID.String()),
		attribute.String(telemetry.SpanAttrResult, reason),
		attribute.Int(telemetry.SpanAttrAdjusted, len(applied)),
	)
	r.logger.Debug("Stock reconciled",
		zap.String("document_type", string(r.docType)),
		zap.String("document_id", documentID.String()),
		zap.String("business_id", businessID.String()),
		zap.String("reason", reason),
		zap.Int("adjustments", len(applied)),
	)
	if r.metrics == nil {
		return
	}
	for _, adj := range applied {
		r.metrics.RecordStockAdjustment(ctx, businessID, r.docType, reason, adj.Delta)
	}
}
