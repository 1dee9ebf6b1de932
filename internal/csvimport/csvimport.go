// Package csvimport turns staff-uploaded CSV text into customer rows for the
// upload pipeline. The format is intentionally naive: values are split on
// commas with no quoting or escaping support, matching the files the tool
// has always accepted.
package csvimport

import (
	"errors"
	"fmt"
	"strings"
)

// Row is one imported contact. Email and Phone are always non-empty; the
// optional fields default to "" when their column is absent from the header.
type Row struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CustomerName   string `json:"customerName,omitempty"`
	ContractID     string `json:"contractId,omitempty"`
	VehicleMake    string `json:"vehicleMake,omitempty"`
	VehicleModel   string `json:"vehicleModel,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	ReturnDate     string `json:"returnDate,omitempty"`
}

// ErrMalformedInput is returned when the text has no header row or no data rows.
var ErrMalformedInput = errors.New("CSV must have a header row and at least one data row")

// MissingColumnError names a required column absent from the header row.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("CSV must have a %q column", e.Column)
}

// Parse reads raw CSV text into rows, preserving input order.
//
// The header decides column positions: "email" and "phone" are required
// (case-insensitive); the optional columns accept either of two names.
// Data rows with fewer than two values, or with an empty email or phone,
// are skipped rather than failing the batch.
func Parse(text string) ([]Row, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, ErrMalformedInput
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	emailIdx := indexOf(headers, "email")
	phoneIdx := indexOf(headers, "phone")
	if emailIdx == -1 {
		return nil, &MissingColumnError{Column: "email"}
	}
	if phoneIdx == -1 {
		return nil, &MissingColumnError{Column: "phone"}
	}

	nameIdx := indexOfAny(headers, "customername", "name")
	contractIdx := indexOfAny(headers, "contractid", "contract")
	makeIdx := indexOfAny(headers, "vehiclemake", "make")
	modelIdx := indexOfAny(headers, "vehiclemodel", "model")
	locationIdx := indexOfAny(headers, "pickuplocation", "location")
	returnIdx := indexOfAny(headers, "returndate", "return")

	var rows []Row
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}

		// Skip empty or invalid rows
		if len(values) < 2 || at(values, emailIdx) == "" || at(values, phoneIdx) == "" {
			continue
		}

		rows = append(rows, Row{
			Email:          values[emailIdx],
			Phone:          values[phoneIdx],
			CustomerName:   at(values, nameIdx),
			ContractID:     at(values, contractIdx),
			VehicleMake:    at(values, makeIdx),
			VehicleModel:   at(values, modelIdx),
			PickupLocation: at(values, locationIdx),
			ReturnDate:     at(values, returnIdx),
		})
	}

	return rows, nil
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func indexOfAny(headers []string, names ...string) int {
	for _, name := range names {
		if i := indexOf(headers, name); i != -1 {
			return i
		}
	}
	return -1
}

// at tolerates short rows: a column index past the end of the row reads as "".
func at(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}

// TemplateCSV is the example file offered for download in the upload screen.
func TemplateCSV() string {
	return "email,phone,customerName,contractId,vehicleMake,vehicleModel,pickupLocation,returnDate\n" +
		"john@example.com,+15551234567,John Doe,C-12345,Toyota,Camry,LAX Airport,2024-02-01"
}
