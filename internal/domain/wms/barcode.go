package wms

// ProductBarcode is a barcode attached to a WMS product. The barcode value is
// the identifying key: it is sent on creation and never on update. Any string
// can be used, typically EAN-13; the WMS does not validate it.
type ProductBarcode struct {
	// ProductID is the WMS-generated id of the product the barcode belongs to
	ProductID string
	// Barcode is the barcode value (string (30)), immutable after creation
	Barcode string
	// Default marks the barcode as the product's default one. Only one
	// barcode per product should be default; the WMS enforces that, not us.
	Default bool
	// MeasurementUnitCode distinguishes barcodes for different units of
	// measurement, omitted when empty
	MeasurementUnitCode string
	// Active is the barcode state (inactive barcodes are kept but unused)
	Active bool
}

// NewProductBarcode creates a barcode for an existing WMS product. Default
// and Active both start as true, matching the WMS defaults.
func NewProductBarcode(productID, barcode string) *ProductBarcode {
	return &ProductBarcode{
		ProductID: productID,
		Barcode:   barcode,
		Default:   true,
		Active:    true,
	}
}
