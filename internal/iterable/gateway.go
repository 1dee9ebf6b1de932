package iterable

// Gateway is the narrow surface the rest of the service depends on, so the
// orchestrator and handlers can be exercised against a substitute instead of
// live HTTP calls.
type Gateway interface {
	CreateList(name string) (int64, error)
	BulkUpsertUsers(users []User) error
	Subscribe(listID int64, emails []string) error
	GetLists() ([]List, error)
	SendMessage(phone, message string, fields map[string]string) error
	TriggerWorkflow(workflowID int64, email string, fields map[string]string) error
	TriggerCampaign(campaignID int64, email string, fields map[string]string) error
}

var _ Gateway = (*Client)(nil)
