package wms

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// OrderType
// ---------------------------------------------------------------------------

// OrderType is the incoming order classification
type OrderType int

const (
	// OrderTypeExternal is an external (customer) order
	OrderTypeExternal OrderType = 1
	// OrderTypeToSupplier is an order directed to a supplier
	OrderTypeToSupplier OrderType = 10
)

// IsValid returns true if the order type is one the WMS accepts
func (t OrderType) IsValid() bool {
	return t == OrderTypeExternal || t == OrderTypeToSupplier
}

// Priority bounds accepted by the WMS. Higher number means higher priority.
const (
	MinOrderPriority = -999
	MaxOrderPriority = 999
)

// DispatchDateLayout is the timestamp format the WMS expects for the
// scheduled dispatch date (2021-01-24 00:00:00.000).
const DispatchDateLayout = "2006-01-02 15:04:05.000"

// ---------------------------------------------------------------------------
// OrderIncoming
// ---------------------------------------------------------------------------

// OrderIncoming is an order to be created in the WMS. OrderCode comes from
// the ERP and must be globally unique; the WMS rejects duplicates, we do not
// deduplicate here. PartnerID and OperatingUnitID reference ids the WMS
// generated when the partner and its operating unit were created.
type OrderIncoming struct {
	// OrderCode is the unique order number from the ERP
	OrderCode string
	// Type classifies the order
	Type OrderType
	// WarehouseCode is the dispatching warehouse code
	WarehouseCode string
	// PartnerID is the WMS-generated partner id
	PartnerID string
	// OperatingUnitID is the WMS-generated operating unit id
	OperatingUnitID string

	// Priority ranges from -999 to 999 and is always sent, 0 when unset
	Priority int
	// DispatchDate is the scheduled dispatch date, omitted when zero
	DispatchDate time.Time
	// DeliveryMethodCode references a delivery method registered in the WMS
	DeliveryMethodCode string
	// PaymentMethodCode references a payment method, mandatory only for
	// cash-on-delivery orders
	PaymentMethodCode string
	// VariableSymbol distinguishes the payment (COD only)
	VariableSymbol string
	// CashAmount is the amount to collect on delivery (COD only)
	CashAmount decimal.Decimal
	// CurrencyCode is the ISO currency for CashAmount (COD only)
	CurrencyCode string

	// Delivery address (B2C). Filled in when the shipment goes to a
	// different address than the partner's operating unit; grouped under
	// partyIdentification on the wire. Country is ISO 3166-1 alpha-2.
	Company   string
	FirstName string
	LastName  string
	Street    string
	City      string
	Zip       string
	Country   string
	Email     string
	Phone     string

	// PickupPlaceCode is the carrier's pickup place code, for pickup-place
	// deliveries only
	PickupPlaceCode string
	// ItemsCustomerOrderCode is the partner's order reference from the ERP,
	// stamped onto every item as customerOrderCode
	ItemsCustomerOrderCode string

	items []*Item
}

// NewOrderIncoming creates an incoming order with the attributes the WMS requires
func NewOrderIncoming(orderCode string, orderType OrderType, warehouseCode, partnerID, operatingUnitID string) *OrderIncoming {
	return &OrderIncoming{
		OrderCode:       orderCode,
		Type:            orderType,
		WarehouseCode:   warehouseCode,
		PartnerID:       partnerID,
		OperatingUnitID: operatingUnitID,
	}
}

// AddItem appends an order item. Item order is preserved and determines the
// 1-based record index the WMS uses in response ids and errors.
func (o *OrderIncoming) AddItem(item *Item) *OrderIncoming {
	o.items = append(o.items, item)
	return o
}

// Items returns the order items in insertion order
func (o *OrderIncoming) Items() []*Item {
	return o.items
}

// ValidatePriority reports whether Priority lies within the range the WMS
// accepts
func (o *OrderIncoming) ValidatePriority() error {
	if o.Priority < MinOrderPriority || o.Priority > MaxOrderPriority {
		return ErrPriorityOutOfRange
	}
	return nil
}

// ---------------------------------------------------------------------------
// Item
// ---------------------------------------------------------------------------

// Item is a single order line. ProductID references the WMS-generated product
// id. Quantity is expressed in MeasurementUnitCode, or in the product's basic
// unit when MeasurementUnitCode is empty.
type Item struct {
	// ProductID is the WMS-generated product id
	ProductID string
	// Quantity is the ordered quantity (numeric (15,4))
	Quantity decimal.Decimal
	// ItemCode is the ERP code of the order line, omitted when empty
	ItemCode string
	// MeasurementUnitCode is the unit the product is issued in, omitted when
	// empty
	MeasurementUnitCode string
}

// NewItem creates an order line for the given product and quantity
func NewItem(productID string, quantity decimal.Decimal) *Item {
	return &Item{
		ProductID: productID,
		Quantity:  quantity,
	}
}
