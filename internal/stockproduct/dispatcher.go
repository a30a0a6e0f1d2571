package stockproduct

import (
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Transaction names of the invocation surface.
const (
	FnCreate = "createStockProduct"
	FnRead   = "readStockProduct"
	FnUpdate = "updateStockProduct"
	FnDelete = "deleteStockProduct"

	// FnInitLedger is answered by the bindings without touching the dispatcher.
	FnInitLedger = "initLedger"
)

// HandlerFunc runs one transaction over positional string arguments.
type HandlerFunc func(ledger Ledger, args []string) ([]byte, error)

// Dispatcher routes a transaction name to its handler.
type Dispatcher struct {
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

// NewDispatcher registers the four record handlers.
func NewDispatcher(h *Handlers, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handlers: map[string]HandlerFunc{
			FnCreate: func(ledger Ledger, args []string) ([]byte, error) {
				if err := checkArity(args, 6); err != nil {
					return nil, err
				}
				return h.Create(ledger, args[0], fieldsFromArgs(args[1:]))
			},
			FnRead: func(ledger Ledger, args []string) ([]byte, error) {
				if err := checkArity(args, 1); err != nil {
					return nil, err
				}
				return h.Read(ledger, args[0])
			},
			FnUpdate: func(ledger Ledger, args []string) ([]byte, error) {
				if err := checkArity(args, 6); err != nil {
					return nil, err
				}
				return h.Update(ledger, args[0], fieldsFromArgs(args[1:]))
			},
			FnDelete: func(ledger Ledger, args []string) ([]byte, error) {
				if err := checkArity(args, 1); err != nil {
					return nil, err
				}
				return h.Delete(ledger, args[0])
			},
		},
		logger: logger,
	}
}

// Invoke runs the handler registered for function.
func (d *Dispatcher) Invoke(ledger Ledger, function string, args []string) ([]byte, error) {
	handler, ok := d.handlers[function]
	if !ok {
		d.logger.Warn("unknown function", zap.String("function", function))
		return nil, &UnknownFunctionError{Name: function}
	}

	d.logger.Debug("dispatching transaction", zap.String("function", function), zap.Int("args", len(args)))
	return handler(ledger, args)
}

// Functions returns the registered transaction names, sorted.
func (d *Dispatcher) Functions() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkArity(args []string, want int) error {
	if len(args) != want {
		return &ValidationError{
			Field:  "arguments",
			Reason: "incorrect number of arguments, expecting " + strconv.Itoa(want) + ", got " + strconv.Itoa(len(args)),
		}
	}
	return nil
}

// fieldsFromArgs expects stockId, productId, amount, totalSales, transactionCompleted.
func fieldsFromArgs(args []string) Fields {
	return Fields{
		StockID:              args[0],
		ProductID:            args[1],
		Amount:               args[2],
		TotalSales:           args[3],
		TransactionCompleted: args[4],
	}
}
