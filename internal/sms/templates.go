// Package sms holds the message template catalog, the merge-field engine and
// the segment calculator used to cost messages before dispatch.
package sms

// TemplateID identifies one of the built-in message templates.
type TemplateID string

const (
	TemplateContractEnding      TemplateID = "contract-ending"
	TemplateOffhireConfirmation TemplateID = "offhire-confirmation"
	TemplateExtensionNotice     TemplateID = "extension-notification"
)

// TemplateDescriptor is one entry of the static template catalog. The UI lets
// staff edit a free-text copy of Body before sending; the catalog itself never
// changes at runtime.
type TemplateDescriptor struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Body        string     `json:"template"`
}

var templates = []TemplateDescriptor{
	{
		ID:          TemplateContractEnding,
		Name:        "Contract Ending",
		Description: "Initial proactive notification sent before contract end date",
		Body: "Hi {{customerName}}, your hire contract {{contractId}} for {{itemCount}} item(s) is ending on {{contractEndDate}}. " +
			"{{itemList}} Reply EXTEND to continue your hire, or COMPLETE to arrange collection. Questions? Call us on 1300 XXX XXX",
	},
	{
		ID:          TemplateOffhireConfirmation,
		Name:        "Off-Hire Confirmation",
		Description: "Sent when customer replies COMPLETE",
		Body: "Off-hire confirmed for {{itemCount}} item(s): {{itemList}} Collection: {{offHireDate}} at {{offHireTime}} " +
			"Location: {{siteLocation}} Site hours: {{siteOpenTime}} - {{siteClosedTime}} " +
			"Site contact: {{siteContactName}} ({{siteContactPhone}}) Notes: {{siteNotes}}",
	},
	{
		ID:          TemplateExtensionNotice,
		Name:        "Extension Notification",
		Description: "Sent when customer replies EXTEND",
		Body: "Hi {{customerName}}, your hire has been extended! Contract: {{contractId}} New end date: {{extensionEndDate}} " +
			"Extension period: {{extensionWeeks}} weeks Items on hire: {{itemList}} " +
			"Your updated invoice will be sent shortly. Questions? Call 1300 XXX XXX",
	},
}

// Templates returns the catalog in display order.
func Templates() []TemplateDescriptor {
	out := make([]TemplateDescriptor, len(templates))
	copy(out, templates)
	return out
}

// Template looks up a catalog entry by id.
func Template(id TemplateID) (TemplateDescriptor, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateDescriptor{}, false
}
