package stockproduct

// Ledger is the part of the world state the handlers touch.
// shim.ChaincodeStubInterface satisfies it.
type Ledger interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
}
