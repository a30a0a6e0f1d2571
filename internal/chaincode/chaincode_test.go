package chaincode

import (
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SilvStei/QualityUseCase/stockproduct/internal/stockproduct"
)

func newMockStub(t *testing.T) *shimtest.MockStub {
	logger := zaptest.NewLogger(t)
	cc := New(stockproduct.NewDispatcher(stockproduct.NewHandlers(logger), logger), logger)
	return shimtest.NewMockStub("stockproduct", cc)
}

func invoke(stub *shimtest.MockStub, args ...string) (int32, string, []byte) {
	raw := make([][]byte, len(args))
	for i, a := range args {
		raw[i] = []byte(a)
	}
	res := stub.MockInvoke("tx-"+args[0], raw)
	return res.Status, res.Message, res.Payload
}

func TestInit(t *testing.T) {
	stub := newMockStub(t)

	res := stub.MockInit("init", nil)
	assert.EqualValues(t, shim.OK, res.Status)
	assert.Empty(t, stub.State)
}

func TestInvokeInitLedger(t *testing.T) {
	stub := newMockStub(t)

	status, message, payload := invoke(stub, "initLedger")
	assert.EqualValues(t, shim.OK, status, message)
	assert.Empty(t, payload)
	assert.Empty(t, stub.State)

	status, _, _ = invoke(stub, "InitLedger")
	assert.EqualValues(t, shim.ERROR, status)
}

func TestInvokeLifecycle(t *testing.T) {
	stub := newMockStub(t)

	status, _, payload := invoke(stub, "createStockProduct", "SP1", "S1", "P1", "10.5", "100.0", "true")
	require.EqualValues(t, shim.OK, status)
	assert.JSONEq(t, `{"stockId":"S1","productId":"P1","amount":10.5,"totalSales":100,"transactionCompleted":true}`, string(payload))

	status, _, payload = invoke(stub, "readStockProduct", "SP1")
	require.EqualValues(t, shim.OK, status)
	assert.JSONEq(t, `{"stockId":"S1","productId":"P1","amount":10.5,"totalSales":100,"transactionCompleted":true}`, string(payload))

	status, _, _ = invoke(stub, "updateStockProduct", "SP1", "S1", "P1", "11", "120", "false")
	require.EqualValues(t, shim.OK, status)

	status, _, payload = invoke(stub, "deleteStockProduct", "SP1")
	require.EqualValues(t, shim.OK, status)
	assert.Equal(t, "SP1", string(payload))

	status, message, _ := invoke(stub, "readStockProduct", "SP1")
	assert.EqualValues(t, shim.ERROR, status)
	assert.Equal(t, "SP1 does not exist", message)
}

func TestInvokeErrorsAsResponses(t *testing.T) {
	stub := newMockStub(t)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"unknown function", []string{"transferStockProduct", "SP1"}, `unknown function "transferStockProduct"`},
		{"update missing", []string{"updateStockProduct", "SP1", "S1", "P1", "1", "2", "true"}, "SP1 does not exist"},
		{"delete missing", []string{"deleteStockProduct", "SP1"}, "SP1 does not exist"},
		{"bad amount", []string{"createStockProduct", "SP1", "S1", "P1", "x", "2", "true"}, `invalid amount "x": not a finite number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, _ := invoke(stub, tt.args...)
			assert.EqualValues(t, shim.ERROR, status)
			assert.Equal(t, tt.message, message)
			assert.Empty(t, stub.State)
		})
	}
}
