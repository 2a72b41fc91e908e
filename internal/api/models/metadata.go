package models

// Enums represents the enum values used by the API.
type Enums struct {
	DisasterTypes      []DisasterType `json:"disasterTypes"`
	ResourceCategories []string       `json:"resourceCategories"`
}

// Contacts is the response for GET /v1/metadata/contacts.
type Contacts struct {
	Items []EmergencyContact `json:"items"`
	Note  string             `json:"note"`
}

// DefaultContacts returns the emergency numbers shown with every plan.
func DefaultContacts() Contacts {
	return Contacts{
		Items: []EmergencyContact{
			{Name: "National Disaster Helpline", Number: "1070"},
			{Name: "Fire Department", Number: "101"},
			{Name: "Medical Emergency", Number: "108"},
		},
		Note: "Always verify information through official channels",
	}
}

// DefaultEnums returns the enum values the API accepts.
func DefaultEnums() Enums {
	return Enums{
		DisasterTypes: []DisasterType{
			DisasterFlood,
			DisasterFire,
			DisasterEarthquake,
			DisasterTsunami,
			DisasterOther,
		},
		ResourceCategories: []string{
			"assembly_point",
			"shelter",
			"fire_hydrant",
			"phone",
		},
	}
}
