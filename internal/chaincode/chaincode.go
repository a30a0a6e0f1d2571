// Package chaincode binds the stock product dispatcher to the low-level
// shim interface, where the chaincode itself inspects the function name and
// argument list of every invocation.
package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"go.uber.org/zap"

	"github.com/SilvStei/QualityUseCase/stockproduct/internal/stockproduct"
)

// Chaincode implements shim.Chaincode on top of a stockproduct.Dispatcher.
type Chaincode struct {
	dispatcher *stockproduct.Dispatcher
	logger     *zap.Logger
}

var _ shim.Chaincode = (*Chaincode)(nil)

// New constructs the shim chaincode.
func New(dispatcher *stockproduct.Dispatcher, logger *zap.Logger) *Chaincode {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chaincode{dispatcher: dispatcher, logger: logger}
}

// Init is called on instantiation and upgrade. The world state starts empty.
func (c *Chaincode) Init(stub shim.ChaincodeStubInterface) pb.Response {
	c.logger.Info("chaincode initialized", zap.String("txID", stub.GetTxID()))
	return shim.Success(nil)
}

// Invoke routes the transaction and reports failures as an error response.
func (c *Chaincode) Invoke(stub shim.ChaincodeStubInterface) pb.Response {
	function, args := stub.GetFunctionAndParameters()
	logger := c.logger.With(zap.String("txID", stub.GetTxID()), zap.String("function", function))

	if function == stockproduct.FnInitLedger {
		logger.Info("initialize ledger")
		return shim.Success(nil)
	}

	payload, err := c.dispatcher.Invoke(stub, function, args)
	if err != nil {
		logger.Warn("transaction failed", zap.Error(err))
		return shim.Error(err.Error())
	}

	logger.Debug("transaction succeeded", zap.Int("payloadSize", len(payload)))
	return shim.Success(payload)
}
