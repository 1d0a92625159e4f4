package wms

// ---------------------------------------------------------------------------
// PartnerType
// ---------------------------------------------------------------------------

// PartnerType classifies a business partner in the WMS
type PartnerType int

const (
	// PartnerTypeUnspecified is an unclassified partner
	PartnerTypeUnspecified PartnerType = 0
	// PartnerTypeCustomer is a customer
	PartnerTypeCustomer PartnerType = 1
	// PartnerTypeSupplier is a supplier
	PartnerTypeSupplier PartnerType = 2
	// PartnerTypeBoth is both customer and supplier
	PartnerTypeBoth PartnerType = 3
)

// IsValid returns true if the partner type is one the WMS accepts
func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerTypeUnspecified, PartnerTypeCustomer, PartnerTypeSupplier, PartnerTypeBoth:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Partner
// ---------------------------------------------------------------------------

// Partner is a business partner record. The WMS assigns a partner id on
// creation; that id is later referenced by operating units and incoming
// orders. The partner code identifies the partner on updates.
type Partner struct {
	// Code is the unique partner code from the ERP
	Code string
	// Type classifies the partner
	Type PartnerType
	// Name is the full partner name
	Name string

	// NameShort is a short display name, omitted when empty
	NameShort string
	// CompanyRegistrationID is the company registration number, omitted when empty
	CompanyRegistrationID string
	// Street, City, Zip and Country form the partner address, grouped under
	// partyIdentification on the wire. Country is an ISO 3166-1 alpha-2 code.
	Street  string
	City    string
	Zip     string
	Country string
	// Email and Phone are partner contacts, omitted when empty
	Email string
	Phone string
	// Active is the partner state
	Active bool

	operatingUnits []*OperatingUnit
}

// NewPartner creates a partner with the attributes the WMS requires.
// Active starts as true.
func NewPartner(code string, partnerType PartnerType, name string) *Partner {
	return &Partner{
		Code:   code,
		Type:   partnerType,
		Name:   name,
		Active: true,
	}
}

// AddOperatingUnit appends an operating unit, preserving insertion order
func (p *Partner) AddOperatingUnit(unit *OperatingUnit) *Partner {
	p.operatingUnits = append(p.operatingUnits, unit)
	return p
}

// OperatingUnits returns the partner's operating units in insertion order
func (p *Partner) OperatingUnits() []*OperatingUnit {
	return p.operatingUnits
}
