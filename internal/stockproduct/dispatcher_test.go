package stockproduct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newDispatcher(t *testing.T) *Dispatcher {
	logger := zaptest.NewLogger(t)
	return NewDispatcher(NewHandlers(logger), logger)
}

func TestDispatcherFunctions(t *testing.T) {
	d := newDispatcher(t)
	assert.Equal(t, []string{FnCreate, FnDelete, FnRead, FnUpdate}, d.Functions())
}

func TestDispatcherUnknownFunction(t *testing.T) {
	d := newDispatcher(t)

	for _, name := range []string{"CreateStockProduct", "createstockproduct", "initLedger", ""} {
		ledger := &failingLedger{MockStub: newStub(t)}

		_, err := d.Invoke(ledger, name, []string{"SP1"})
		require.ErrorIs(t, err, ErrUnknownFunction)

		var uf *UnknownFunctionError
		require.ErrorAs(t, err, &uf)
		assert.Equal(t, name, uf.Name)
		assert.Empty(t, ledger.calls)
	}
}

func TestDispatcherArity(t *testing.T) {
	d := newDispatcher(t)
	stub := newStub(t)

	tests := []struct {
		fn   string
		args []string
	}{
		{FnCreate, []string{"SP1", "S1", "P1", "1", "2"}},
		{FnUpdate, []string{"SP1", "S1", "P1", "1", "2", "true", "extra"}},
		{FnRead, nil},
		{FnDelete, []string{"SP1", "SP2"}},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			_, err := d.Invoke(stub, tt.fn, tt.args)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDispatcherLifecycle(t *testing.T) {
	d := newDispatcher(t)
	stub := newStub(t)

	_, err := d.Invoke(stub, FnUpdate, []string{"SP1", "S1", "P1", "10.5", "100.0", "true"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, stub.State)

	_, err = d.Invoke(stub, FnCreate, []string{"SP1", "S1", "P1", "10.5", "100.0", "true"})
	require.NoError(t, err)

	got, err := d.Invoke(stub, FnRead, []string{"SP1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stockId":"S1","productId":"P1","amount":10.5,"totalSales":100.0,"transactionCompleted":true}`, string(got))

	_, err = d.Invoke(stub, FnUpdate, []string{"SP1", "S2", "P2", "3", "4", "1"})
	require.NoError(t, err)

	got, err = d.Invoke(stub, FnRead, []string{"SP1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stockId":"S2","productId":"P2","amount":3,"totalSales":4,"transactionCompleted":false}`, string(got))

	got, err = d.Invoke(stub, FnDelete, []string{"SP1"})
	require.NoError(t, err)
	assert.Equal(t, "SP1", string(got))

	_, err = d.Invoke(stub, FnRead, []string{"SP1"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = d.Invoke(stub, FnDelete, []string{"SP1"})
	require.ErrorIs(t, err, ErrNotFound)
}
