// Package wms contains the domain model for the MyStock warehouse management
// system integration: the entities pushed to the remote interface (products,
// barcodes, partners, incoming orders), the typed response returned by every
// call, the callback events the WMS pushes back, and the Fulfillment port
// interface implemented by the infrastructure layer.
//
// Entities are plain data holders. Required attributes are set at construction
// time; optional attributes are exported fields whose zero value means "not
// set" and is omitted from the wire payload. Entities are built, handed to one
// Fulfillment call and discarded - nothing here retains or mutates them
// afterwards, so all types are safe to share across goroutines once built.
package wms
