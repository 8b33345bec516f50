// Package entity defines the legal entity record returned by a registry
// lookup and its display form.
package entity

import "time"

// Record is the raw registry record for a legal entity.
// Date fields hold ISO-8601 UTC timestamps, or "" when absent.
type Record struct {
	LegalName               string `json:"legal_name"`
	LEI                     string `json:"lei"`
	Status                  string `json:"status"`
	RegistrationStatus      string `json:"registration_status"`
	Category                string `json:"category,omitempty"`
	InitialRegistrationDate string `json:"initial_registration_date,omitempty"`
	LastUpdateDate          string `json:"last_update_date,omitempty"`
	NextRenewalDate         string `json:"next_renewal_date,omitempty"`
	LegalAddress            string `json:"legal_address,omitempty"`
	LegalCity               string `json:"legal_city,omitempty"`
	LegalPostalCode         string `json:"legal_postal_code,omitempty"`
	LegalCountry            string `json:"legal_country,omitempty"`
	Jurisdiction            string `json:"jurisdiction,omitempty"`
}

// DisplayRecord is a Record whose three date fields have been rendered for
// display by FormatDate.
type DisplayRecord Record

// ToDisplay converts r for display, formatting dates in loc.
// A nil loc means time.Local.
func ToDisplay(r Record, loc *time.Location) DisplayRecord {
	d := DisplayRecord(r)
	d.InitialRegistrationDate = FormatDateIn(r.InitialRegistrationDate, loc)
	d.LastUpdateDate = FormatDateIn(r.LastUpdateDate, loc)
	d.NextRenewalDate = FormatDateIn(r.NextRenewalDate, loc)
	return d
}
