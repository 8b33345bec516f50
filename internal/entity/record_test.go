package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		LegalName:               "Test Corp",
		LEI:                     "12345678901234567890",
		Status:                  "Active",
		RegistrationStatus:      "Registered",
		Category:                "Financial",
		InitialRegistrationDate: "2024-01-01T00:00:00.000Z",
		LastUpdateDate:          "2025-03-18T12:00:00.000Z",
		NextRenewalDate:         "2026-01-01T00:00:00.000Z",
		LegalAddress:            "123 Legal Street",
		LegalCity:               "Paris",
		LegalPostalCode:         "75001",
		LegalCountry:            "FR",
		Jurisdiction:            "France",
	}
}

func TestToDisplay_FormatsOnlyDates(t *testing.T) {
	r := sampleRecord()

	d := ToDisplay(r, time.UTC)

	require.Equal(t, "01 Jan 2024", d.InitialRegistrationDate)
	require.Equal(t, "18 Mar 2025", d.LastUpdateDate)
	require.Equal(t, "01 Jan 2026", d.NextRenewalDate)

	// Everything else passes through untouched.
	want := DisplayRecord(r)
	want.InitialRegistrationDate = d.InitialRegistrationDate
	want.LastUpdateDate = d.LastUpdateDate
	want.NextRenewalDate = d.NextRenewalDate
	require.Equal(t, want, d)
}

func TestToDisplay_AbsentDates(t *testing.T) {
	r := sampleRecord()
	r.NextRenewalDate = ""

	d := ToDisplay(r, time.UTC)

	require.Equal(t, "", d.NextRenewalDate)
	require.Equal(t, "18 Mar 2025", d.LastUpdateDate)
}
