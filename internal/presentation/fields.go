// Package presentation turns a display record into the ordered list of
// fields shown by the widget and printed by the lookup command.
package presentation

import "github.com/zjrosen/leifetch/internal/entity"

// Field is one entry of the details list. The name entry has no label.
type Field struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// String renders the field as "Label: Value", or just Value when unlabeled.
func (f Field) String() string {
	if f.Label == "" {
		return f.Value
	}
	return f.Label + ": " + f.Value
}

// Fields returns the details list for r. The name always comes first and the
// status second; the remaining attributes follow and are omitted when empty.
func Fields(r entity.DisplayRecord) []Field {
	fields := []Field{
		{Value: r.LegalName},
		{Label: "Status", Value: r.Status},
	}

	optional := []Field{
		{Label: "LEI", Value: r.LEI},
		{Label: "Registration Status", Value: r.RegistrationStatus},
		{Label: "Category", Value: r.Category},
		{Label: "Legal Address", Value: r.LegalAddress},
		{Label: "City", Value: r.LegalCity},
		{Label: "Postal Code", Value: r.LegalPostalCode},
		{Label: "Country", Value: r.LegalCountry},
		{Label: "Jurisdiction", Value: r.Jurisdiction},
		{Label: "Initial Registration Date", Value: r.InitialRegistrationDate},
		{Label: "Last Update Date", Value: r.LastUpdateDate},
		{Label: "Next Renewal Date", Value: r.NextRenewalDate},
	}
	for _, f := range optional {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
