package sms

// SampleContext is the demo data set used to preview catalog templates before
// real customer data is loaded.
func SampleContext() Context {
	return Context{
		"customerName":     "John Smith",
		"customerPhone":    "+61400000000",
		"contractId":       "CON-12345",
		"itemCount":        2,
		"itemList":         "1x Scissor Lift SL-200, 1x Boom Lift BL-400",
		"contractEndDate":  "15 Feb 2026",
		"offHireDate":      "16 Feb 2026",
		"offHireTime":      "9:00 AM",
		"extensionEndDate": "28 Feb 2026",
		"extensionWeeks":   2,
		"siteLocation":     "123 Construction Site, Sydney NSW",
		"siteContactName":  "Site Manager",
		"siteContactPhone": "+61400111222",
		"siteOpenTime":     "7:00 AM",
		"siteClosedTime":   "5:00 PM",
		"siteNotes":        "Access via rear gate",
	}
}

// Preview merges a catalog template with the sample data set.
func Preview(id TemplateID) (string, bool) {
	t, ok := Template(id)
	if !ok {
		return "", false
	}
	return Merge(t.Body, SampleContext()), true
}
