package wms

// ---------------------------------------------------------------------------
// ProductType
// ---------------------------------------------------------------------------

// ProductType is the WMS product classification (smallint on the wire).
type ProductType int

const (
	// ProductTypeGoods is ordinary sellable goods
	ProductTypeGoods ProductType = 0
	// ProductTypeMaterial is raw material
	ProductTypeMaterial ProductType = 10
	// ProductTypePackaging is packaging material
	ProductTypePackaging ProductType = 20
	// ProductTypeFee is a fee position
	ProductTypeFee ProductType = 30
	// ProductTypeProduct is a manufactured product
	ProductTypeProduct ProductType = 40
	// ProductTypeSet is a set of other products
	ProductTypeSet ProductType = 50
	// ProductTypeSemiFinished is a semi-finished product
	ProductTypeSemiFinished ProductType = 60
	// ProductTypeProductionInProgress is production in progress
	ProductTypeProductionInProgress ProductType = 70
	// ProductTypeGiftVoucher is a gift voucher
	ProductTypeGiftVoucher ProductType = 80
	// ProductTypeFabric is fabric
	ProductTypeFabric ProductType = 90
	// ProductTypePromotionalMaterial is promotional material
	ProductTypePromotionalMaterial ProductType = 100
)

// IsValid returns true if the product type is one the WMS accepts
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeGoods, ProductTypeMaterial, ProductTypePackaging, ProductTypeFee,
		ProductTypeProduct, ProductTypeSet, ProductTypeSemiFinished,
		ProductTypeProductionInProgress, ProductTypeGiftVoucher, ProductTypeFabric,
		ProductTypePromotionalMaterial:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Product
// ---------------------------------------------------------------------------

// Product is a product record to be created or updated in the WMS.
// ProductCode identifies the product to warehouse operators and cannot be
// changed over time; the WMS assigns its own id on creation and returns it in
// the response.
type Product struct {
	// ProductCode is the unique, immutable product code (string (150))
	ProductCode string
	// Name is the product name (string (255))
	Name string
	// Type is the product classification
	Type ProductType
	// MeasurementUnitCode is the basic unit of measurement the product is
	// recorded in on stock cards
	MeasurementUnitCode string
	// WarehouseCode is the code of a warehouse registered in the WMS
	WarehouseCode string

	// WeightGross is the gross weight, omitted when zero
	WeightGross float64
	// WeightNett is the net weight, omitted when zero
	WeightNett float64
	// Height, Width, Depth and Volume are the gross dimensions; non-zero
	// values are grouped under grossDimension on the wire
	Height float64
	Width  float64
	Depth  float64
	Volume float64
	// PictureURL is a URL path to the product image, omitted when empty
	PictureURL string
	// ExpirationMandatory makes expiration date registration mandatory
	ExpirationMandatory bool
	// InboundMandatory and OutboundMandatory make serial number registration
	// mandatory on inbound/outbound; grouped under serialNumbersRecords
	InboundMandatory  bool
	OutboundMandatory bool

	barcodes []*ProductBarcode
}

// NewProduct creates a product with the attributes the WMS requires
func NewProduct(productCode, name string, productType ProductType, measurementUnitCode, warehouseCode string) *Product {
	return &Product{
		ProductCode:         productCode,
		Name:                name,
		Type:                productType,
		MeasurementUnitCode: measurementUnitCode,
		WarehouseCode:       warehouseCode,
	}
}

// AddBarcode appends a barcode to the product. Barcodes keep insertion order;
// the order determines the record index the WMS uses in responses.
func (p *Product) AddBarcode(barcode *ProductBarcode) *Product {
	p.barcodes = append(p.barcodes, barcode)
	return p
}

// Barcodes returns the product's barcodes in insertion order
func (p *Product) Barcodes() []*ProductBarcode {
	return p.barcodes
}
