// Package journey describes the offhire customer journey as a static catalog
// the UI renders. The journey itself executes remotely; nothing here runs.
package journey

// NodeType classifies a journey step.
type NodeType string

const (
	NodeTrigger   NodeType = "trigger"
	NodeAction    NodeType = "action"
	NodeCondition NodeType = "condition"
	NodeEnd       NodeType = "end"
)

// Node is one step of the journey, in display order.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeType `json:"type"`
}

var nodes = []Node{
	{ID: "offhire-request", Label: "Offhire Requested", Type: NodeTrigger},
	{ID: "scheduled-sms", Label: "Send Scheduled SMS", Type: NodeAction},
	{ID: "wait-confirmation", Label: "Wait for customer reply", Type: NodeCondition},
	{ID: "wait-return", Label: "Wait until day before return", Type: NodeCondition},
	{ID: "reminder-sms", Label: "Send Reminder SMS", Type: NodeAction},
	{ID: "vehicle-returned", Label: "Vehicle Returned", Type: NodeTrigger},
	{ID: "complete-sms", Label: "Send Completion SMS", Type: NodeAction},
	{ID: "complete", Label: "Offhire Complete", Type: NodeEnd},
}

// Nodes returns the journey steps in order.
func Nodes() []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}
