// Package contract exposes the stock product transactions through the
// Fabric contract API, which maps transaction names onto contract methods.
package contract

import (
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-contract-api-go/metadata"
	"go.uber.org/zap"

	"github.com/SilvStei/QualityUseCase/stockproduct/internal/stockproduct"
)

// StockProductContract implements the StockProduct CRUD transactions.
type StockProductContract struct {
	contractapi.Contract

	dispatcher *stockproduct.Dispatcher
	logger     *zap.Logger
	allowed    map[string]struct{}
}

// NewContract builds the contract around the shared dispatcher.
func NewContract(dispatcher *stockproduct.Dispatcher, logger *zap.Logger) *StockProductContract {
	if logger == nil {
		logger = zap.NewNop()
	}

	allowed := map[string]struct{}{stockproduct.FnInitLedger: {}}
	for _, name := range dispatcher.Functions() {
		allowed[name] = struct{}{}
	}

	c := &StockProductContract{
		dispatcher: dispatcher,
		logger:     logger,
		allowed:    allowed,
	}
	c.BeforeTransaction = c.beforeTransaction
	c.UnknownTransaction = c.unknownTransaction
	return c
}

// New builds the contract chaincode with the stock product contract as default.
func New(dispatcher *stockproduct.Dispatcher, version string, logger *zap.Logger) (*contractapi.ContractChaincode, error) {
	c := NewContract(dispatcher, logger)
	c.Info = metadata.InfoMetadata{
		Title:       "StockProductContract",
		Description: "CRUD over StockProduct records in the world state",
		Version:     version,
	}

	cc, err := contractapi.NewChaincode(c)
	if err != nil {
		return nil, err
	}
	cc.Info.Title = "stockproduct"
	cc.Info.Version = version
	return cc, nil
}

// InitLedger leaves the world state empty.
func (c *StockProductContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	c.logger.Info("initialize ledger", zap.String("txID", ctx.GetStub().GetTxID()))
	return nil
}

// CreateStockProduct stores a record, replacing any record under the same id.
func (c *StockProductContract) CreateStockProduct(ctx contractapi.TransactionContextInterface, stockProductID, stockID, productID, amount, totalSales, transactionCompleted string) (string, error) {
	return c.invoke(ctx, stockproduct.FnCreate, stockProductID, stockID, productID, amount, totalSales, transactionCompleted)
}

// ReadStockProduct returns the stored record.
func (c *StockProductContract) ReadStockProduct(ctx contractapi.TransactionContextInterface, stockProductID string) (string, error) {
	return c.invoke(ctx, stockproduct.FnRead, stockProductID)
}

// UpdateStockProduct replaces an existing record.
func (c *StockProductContract) UpdateStockProduct(ctx contractapi.TransactionContextInterface, stockProductID, stockID, productID, amount, totalSales, transactionCompleted string) (string, error) {
	return c.invoke(ctx, stockproduct.FnUpdate, stockProductID, stockID, productID, amount, totalSales, transactionCompleted)
}

// DeleteStockProduct removes an existing record and returns its id.
func (c *StockProductContract) DeleteStockProduct(ctx contractapi.TransactionContextInterface, stockProductID string) (string, error) {
	return c.invoke(ctx, stockproduct.FnDelete, stockProductID)
}

func (c *StockProductContract) invoke(ctx contractapi.TransactionContextInterface, function string, args ...string) (string, error) {
	payload, err := c.dispatcher.Invoke(ctx.GetStub(), function, args)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// beforeTransaction keeps name matching case-sensitive; the contract API
// upper-cases the first letter before looking up the method.
func (c *StockProductContract) beforeTransaction(ctx contractapi.TransactionContextInterface) error {
	function := requestedFunction(ctx)
	c.logger.Debug("transaction", zap.String("txID", ctx.GetStub().GetTxID()), zap.String("function", function))

	if _, ok := c.allowed[function]; !ok {
		return &stockproduct.UnknownFunctionError{Name: function}
	}
	return nil
}

func (c *StockProductContract) unknownTransaction(ctx contractapi.TransactionContextInterface) (string, error) {
	function := requestedFunction(ctx)
	c.logger.Warn("unknown transaction", zap.String("function", function))
	return "", &stockproduct.UnknownFunctionError{Name: function}
}

// requestedFunction strips an optional "Contract:" namespace.
func requestedFunction(ctx contractapi.TransactionContextInterface) string {
	function, _ := ctx.GetStub().GetFunctionAndParameters()
	if i := strings.LastIndex(function, ":"); i >= 0 {
		function = function[i+1:]
	}
	return function
}
