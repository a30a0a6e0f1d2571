// Package stockproduct holds the StockProduct record lifecycle: argument
// coercion, the create/read/update/delete handlers and the dispatcher
// shared by the contract and shim bindings.
//
// Create is an upsert. Update and delete require the key to exist and fail
// with ErrNotFound before touching the world state otherwise.
package stockproduct
