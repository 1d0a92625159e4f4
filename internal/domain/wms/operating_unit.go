package wms

// OperatingUnit is a partner's operating unit (branch, store, warehouse dock).
// PartnerID references the WMS-generated partner id.
type OperatingUnit struct {
	// Code is the unique operating unit code from the ERP
	Code string
	// PartnerID is the WMS-generated id of the owning partner
	PartnerID string
	// Type classifies the operating unit
	Type int
	// Name is the operating unit name
	Name string

	// Street, City, Zip and Country form the unit address, grouped under
	// partyIdentification on the wire
	Street  string
	City    string
	Zip     string
	Country string
	// Email and Phone are unit contacts, omitted when empty
	Email string
	Phone string
}

// NewOperatingUnit creates an operating unit with the attributes the WMS requires
func NewOperatingUnit(code, partnerID string, unitType int, name string) *OperatingUnit {
	return &OperatingUnit{
		Code:      code,
		PartnerID: partnerID,
		Type:      unitType,
		Name:      name,
	}
}
