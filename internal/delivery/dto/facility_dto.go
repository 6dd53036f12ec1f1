package dto

type FacilityService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type FacilityStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type FacilityHours struct {
	OPD       string `json:"opd"`
	Emergency string `json:"emergency"`
	Pharmacy  string `json:"pharmacy"`
}

type FacilityContactInfo struct {
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	Emergency string        `json:"emergency"`
	Email     string        `json:"email"`
	Hours     FacilityHours `json:"hours"`
}

type FacilitySpecialization struct {
	Name   string `json:"name"`
	Doctor string `json:"doctor"`
}

type FacilityInfoResponse struct {
	HospitalName    string                   `json:"hospital_name"`
	Tagline         string                   `json:"tagline"`
	Description     string                   `json:"description"`
	Services        []FacilityService        `json:"services"`
	Stats           []FacilityStat           `json:"stats"`
	ContactInfo     FacilityContactInfo      `json:"contact_info"`
	Specializations []FacilitySpecialization `json:"specializations"`
}
