package mystock

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/artfocus/mystock-go/internal/domain/wms"
)

// Payload mapping for the MyStock interface. Payloads are built as
// map[string]any rather than tagged structs: inclusion is conditional
// (optional fields are omitted when zero/empty, not sent as null), related
// flat attributes fold into nested wire objects, and booleans are coerced to
// 0/1 because the interface has no boolean type. The mappers are total - a
// well-formed entity always maps.
//
// A zero value of an optional numeric attribute is indistinguishable from
// "absent" and is omitted; the interface accepts that ambiguity.

// boolToInt coerces a boolean to the 0/1 integers the interface expects
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// decimalNumber renders a decimal as a raw JSON number
func decimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ---------------------------------------------------------------------------
// Product
// ---------------------------------------------------------------------------

// productPayload maps a product for the product service. Create and update
// share the same field set; nested barcodes always carry their barcode value
// because the product payload can only create them.
func productPayload(p *wms.Product) map[string]any {
	data := map[string]any{
		"productCode":         p.ProductCode,
		"name":                p.Name,
		"type":                int(p.Type),
		"measurementUnitCode": p.MeasurementUnitCode,
		"warehouseCode":       p.WarehouseCode,
	}

	if p.WeightGross != 0 {
		data["weightGross"] = p.WeightGross
	}
	if p.WeightNett != 0 {
		data["weightNett"] = p.WeightNett
	}

	dimension := map[string]any{}
	if p.Height != 0 {
		dimension["height"] = p.Height
	}
	if p.Width != 0 {
		dimension["width"] = p.Width
	}
	if p.Depth != 0 {
		dimension["depth"] = p.Depth
	}
	if p.Volume != 0 {
		dimension["volume"] = p.Volume
	}
	if len(dimension) > 0 {
		data["grossDimension"] = dimension
	}

	if p.PictureURL != "" {
		data["pictureUrl"] = p.PictureURL
	}
	if p.ExpirationMandatory {
		data["expirationMandatory"] = boolToInt(p.ExpirationMandatory)
	}

	serials := map[string]any{}
	if p.InboundMandatory {
		serials["inboundMandatory"] = boolToInt(p.InboundMandatory)
	}
	if p.OutboundMandatory {
		serials["outboundMandatory"] = boolToInt(p.OutboundMandatory)
	}
	if len(serials) > 0 {
		data["serialNumbersRecords"] = serials
	}

	if barcodes := p.Barcodes(); len(barcodes) > 0 {
		data["barcodes"] = barcodesPayload(barcodes, false)
	}

	return data
}

// ---------------------------------------------------------------------------
// ProductBarcode
// ---------------------------------------------------------------------------

// barcodePayload maps a single barcode. The barcode value is the identifying
// key and immutable, so it is sent on create only.
func barcodePayload(b *wms.ProductBarcode, update bool) map[string]any {
	data := map[string]any{
		"productId": b.ProductID,
	}
	if !update {
		data["barcode"] = b.Barcode
	}
	data["default"] = boolToInt(b.Default)
	if b.MeasurementUnitCode != "" {
		data["measurementUnitCode"] = b.MeasurementUnitCode
	}
	data["active"] = boolToInt(b.Active)

	return data
}

// barcodesPayload maps a barcode collection preserving insertion order
func barcodesPayload(barcodes []*wms.ProductBarcode, update bool) []map[string]any {
	items := make([]map[string]any, 0, len(barcodes))
	for _, b := range barcodes {
		items = append(items, barcodePayload(b, update))
	}
	return items
}

// ---------------------------------------------------------------------------
// Partner / OperatingUnit
// ---------------------------------------------------------------------------

// partnerPayload maps a partner for the partner service
func partnerPayload(p *wms.Partner) map[string]any {
	data := map[string]any{
		"code": p.Code,
		"type": int(p.Type),
		"name": p.Name,
	}

	if p.NameShort != "" {
		data["nameShort"] = p.NameShort
	}
	if p.CompanyRegistrationID != "" {
		data["companyRegistrationId"] = p.CompanyRegistrationID
	}

	if party := partyIdentification("", "", "", p.Street, p.City, p.Zip, p.Country, p.Email, p.Phone); party != nil {
		data["partyIdentification"] = party
	}

	data["active"] = boolToInt(p.Active)

	if units := p.OperatingUnits(); len(units) > 0 {
		mapped := make([]map[string]any, 0, len(units))
		for _, u := range units {
			mapped = append(mapped, operatingUnitPayload(u))
		}
		data["operatingUnits"] = mapped
	}

	return data
}

// operatingUnitPayload maps a partner's operating unit
func operatingUnitPayload(u *wms.OperatingUnit) map[string]any {
	data := map[string]any{
		"code":      u.Code,
		"partnerId": u.PartnerID,
		"type":      u.Type,
		"name":      u.Name,
	}

	if party := partyIdentification("", "", "", u.Street, u.City, u.Zip, u.Country, u.Email, u.Phone); party != nil {
		data["partyIdentification"] = party
	}

	return data
}

// partyIdentification folds flat address attributes into the nested wire
// object, returning nil when every attribute is empty
func partyIdentification(company, firstName, lastName, street, city, zip, country, email, phone string) map[string]any {
	party := map[string]any{}
	if company != "" {
		party["company"] = company
	}
	if firstName != "" {
		party["firstName"] = firstName
	}
	if lastName != "" {
		party["lastName"] = lastName
	}
	if street != "" {
		party["street"] = street
	}
	if city != "" {
		party["city"] = city
	}
	if zip != "" {
		party["zip"] = zip
	}
	if country != "" {
		party["country"] = country
	}
	if email != "" {
		party["email"] = email
	}
	if phone != "" {
		party["phone"] = phone
	}
	if len(party) == 0 {
		return nil
	}
	return party
}

// ---------------------------------------------------------------------------
// OrderIncoming
// ---------------------------------------------------------------------------

// orderIncomingPayload maps an incoming order with its items. Priority is
// always sent - the interface wants an explicit number even when it is the
// default 0. The paymentInformation block is emitted only when both a payment
// method and a cash amount are present; a payment method alone stays a plain
// top-level attribute.
func orderIncomingPayload(o *wms.OrderIncoming) map[string]any {
	data := map[string]any{
		"orderCode":       o.OrderCode,
		"type":            int(o.Type),
		"warehouseCode":   o.WarehouseCode,
		"partnerId":       o.PartnerID,
		"operatingUnitId": o.OperatingUnitID,
		"priority":        o.Priority,
	}

	if !o.DispatchDate.IsZero() {
		data["dispatchDate"] = o.DispatchDate.Format(wms.DispatchDateLayout)
	}
	if o.DeliveryMethodCode != "" {
		data["deliveryMethodCode"] = o.DeliveryMethodCode
	}
	if o.PaymentMethodCode != "" {
		data["paymentMethodCode"] = o.PaymentMethodCode
	}

	if o.PaymentMethodCode != "" && !o.CashAmount.IsZero() {
		payment := map[string]any{
			"cashAmount": decimalNumber(o.CashAmount),
		}
		if o.CurrencyCode != "" {
			payment["currencyCode"] = o.CurrencyCode
		}
		if o.VariableSymbol != "" {
			payment["variableSymbol"] = o.VariableSymbol
		}
		data["paymentInformation"] = payment
	}

	if party := partyIdentification(o.Company, o.FirstName, o.LastName, o.Street, o.City, o.Zip, o.Country, o.Email, o.Phone); party != nil {
		data["partyIdentification"] = party
	}

	if o.PickupPlaceCode != "" {
		data["pickupPlaceCode"] = o.PickupPlaceCode
	}

	if items := o.Items(); len(items) > 0 {
		mapped := make([]map[string]any, 0, len(items))
		for _, item := range items {
			mapped = append(mapped, itemPayload(item, o.ItemsCustomerOrderCode))
		}
		data["items"] = mapped
	}

	return data
}

// itemPayload maps one order line. The quantity and its unit nest under
// amount; the partner's order reference is stamped onto every item.
func itemPayload(item *wms.Item, customerOrderCode string) map[string]any {
	amount := map[string]any{
		"quantity": decimalNumber(item.Quantity),
	}
	if item.MeasurementUnitCode != "" {
		amount["measurementUnitCode"] = item.MeasurementUnitCode
	}

	data := map[string]any{
		"productId": item.ProductID,
		"amount":    amount,
	}
	if item.ItemCode != "" {
		data["itemCode"] = item.ItemCode
	}
	if customerOrderCode != "" {
		data["customerOrderCode"] = customerOrderCode
	}

	return data
}
