package stockproduct

import (
	"fmt"

	"go.uber.org/zap"
)

// Handlers implements the record lifecycle against a Ledger.
// Each operation issues at most one read and one write or delete, in order.
type Handlers struct {
	logger *zap.Logger
}

// NewHandlers constructs the record handlers.
func NewHandlers(logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{logger: logger}
}

// Create writes the record under id, overwriting whatever is stored there.
func (h *Handlers) Create(ledger Ledger, id string, fields Fields) ([]byte, error) {
	h.logger.Debug("create stock product", zap.String("stockProductId", id))

	if err := validateID(id); err != nil {
		return nil, err
	}
	record, err := fields.Coerce()
	if err != nil {
		return nil, err
	}
	data, err := h.put(ledger, id, record)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("stock product created", zap.String("stockProductId", id))
	return data, nil
}

// Read returns the stored bytes unchanged.
func (h *Handlers) Read(ledger Ledger, id string) ([]byte, error) {
	h.logger.Debug("read stock product", zap.String("stockProductId", id))

	if err := validateID(id); err != nil {
		return nil, err
	}
	return h.get(ledger, id)
}

// Update replaces an existing record wholesale.
func (h *Handlers) Update(ledger Ledger, id string, fields Fields) ([]byte, error) {
	h.logger.Debug("update stock product", zap.String("stockProductId", id))

	if err := validateID(id); err != nil {
		return nil, err
	}
	if _, err := h.get(ledger, id); err != nil {
		return nil, err
	}
	record, err := fields.Coerce()
	if err != nil {
		return nil, err
	}
	data, err := h.put(ledger, id, record)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("stock product updated", zap.String("stockProductId", id))
	return data, nil
}

// Delete removes an existing record and returns its id.
func (h *Handlers) Delete(ledger Ledger, id string) ([]byte, error) {
	h.logger.Debug("delete stock product", zap.String("stockProductId", id))

	if err := validateID(id); err != nil {
		return nil, err
	}
	if _, err := h.get(ledger, id); err != nil {
		return nil, err
	}
	if err := ledger.DelState(id); err != nil {
		h.logger.Error("DelState failed", zap.String("stockProductId", id), zap.Error(err))
		return nil, &LedgerError{Op: "DelState", Key: id, Err: err}
	}

	h.logger.Debug("stock product deleted", zap.String("stockProductId", id))
	return []byte(id), nil
}

func (h *Handlers) get(ledger Ledger, id string) ([]byte, error) {
	data, err := ledger.GetState(id)
	if err != nil {
		h.logger.Error("GetState failed", zap.String("stockProductId", id), zap.Error(err))
		return nil, &LedgerError{Op: "GetState", Key: id, Err: err}
	}
	if len(data) == 0 {
		h.logger.Warn("stock product does not exist", zap.String("stockProductId", id))
		return nil, &NotFoundError{ID: id}
	}
	return data, nil
}

func (h *Handlers) put(ledger Ledger, id string, record StockProduct) ([]byte, error) {
	data, err := record.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal stock product %s: %w", id, err)
	}
	if err := ledger.PutState(id, data); err != nil {
		h.logger.Error("PutState failed", zap.String("stockProductId", id), zap.Error(err))
		return nil, &LedgerError{Op: "PutState", Key: id, Err: err}
	}
	return data, nil
}
