package client

// Ownership represents how a client holds their vessel
type Ownership uint8

const (
	// OwnershipShared marks a co-owned vessel subject to cross-client booking rules
	OwnershipShared Ownership = iota
	// OwnershipSole marks a privately owned vessel exempt from cross-client booking rules
	OwnershipSole
)

// String returns the string representation of Ownership
func (o Ownership) String() string {
	switch o {
	case OwnershipShared:
		return "SHARED"
	case OwnershipSole:
		return "SOLE"
	default:
		return "unknown"
	}
}

type Model struct {
	id                 uint32
	name               string
	vesselName         string
	ownership          Ownership
	blocked            bool
	vesselManufacturer string
	vesselModel        string
	vesselYear         uint16
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) VesselName() string {
	return m.vesselName
}

func (m Model) Ownership() Ownership {
	return m.ownership
}

func (m Model) Blocked() bool {
	return m.blocked
}

func (m Model) VesselManufacturer() string {
	return m.vesselManufacturer
}

func (m Model) VesselModel() string {
	return m.vesselModel
}

func (m Model) VesselYear() uint16 {
	return m.vesselYear
}

// IsRegistrationComplete reports whether the profile carries everything the
// booking rules need. A shared owner needs a vessel assignment; a sole owner
// needs the vessel model and year on file.
func (m Model) IsRegistrationComplete() bool {
	if m.ownership == OwnershipShared {
		return m.vesselName != ""
	}
	return m.vesselModel != "" && m.vesselYear != 0
}

// NewModel creates a new client model for testing purposes
func NewModel(id uint32, name string, vesselName string, ownership Ownership) Model {
	return Model{
		id:         id,
		name:       name,
		vesselName: vesselName,
		ownership:  ownership,
	}
}

// NewSoleModel creates a sole-owner client model for testing purposes
func NewSoleModel(id uint32, name string, vesselModel string, vesselYear uint16) Model {
	return Model{
		id:          id,
		name:        name,
		ownership:   OwnershipSole,
		vesselModel: vesselModel,
		vesselYear:  vesselYear,
	}
}

// NewBlockedModel creates a blocked client model for testing purposes
func NewBlockedModel(id uint32, name string, vesselName string, ownership Ownership) Model {
	m := NewModel(id, name, vesselName, ownership)
	m.blocked = true
	return m
}
