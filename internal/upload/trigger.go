package upload

import (
	"errors"

	"offhire-sms-gateway/internal/csvimport"
	"offhire-sms-gateway/internal/iterable"
)

// TriggerResult aggregates a per-row trigger run.
type TriggerResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// TriggerWorkflow starts a remote workflow for every row, one call per row,
// strictly sequentially. A row failure is counted and the run continues; only
// a missing credential aborts, since every remaining call would fail the same
// way.
func (o *Orchestrator) TriggerWorkflow(workflowID int64, rows []csvimport.Row) (TriggerResult, error) {
	return o.triggerEach(rows, func(email string, fields map[string]string) error {
		return o.Gateway.TriggerWorkflow(workflowID, email, fields)
	})
}

// TriggerCampaign sends an existing campaign to every row, with the same
// per-row semantics as TriggerWorkflow.
func (o *Orchestrator) TriggerCampaign(campaignID int64, rows []csvimport.Row) (TriggerResult, error) {
	return o.triggerEach(rows, func(email string, fields map[string]string) error {
		return o.Gateway.TriggerCampaign(campaignID, email, fields)
	})
}

func (o *Orchestrator) triggerEach(rows []csvimport.Row, send func(email string, fields map[string]string) error) (TriggerResult, error) {
	if len(rows) == 0 {
		return TriggerResult{}, &ValidationError{msg: "Users array is required"}
	}

	var result TriggerResult
	for _, row := range rows {
		result.Attempted++
		err := send(row.Email, map[string]string{
			"customerName":   row.CustomerName,
			"contractId":     row.ContractID,
			"vehicleMake":    row.VehicleMake,
			"vehicleModel":   row.VehicleModel,
			"pickupLocation": row.PickupLocation,
			"returnDate":     row.ReturnDate,
			"phoneNumber":    iterable.FormatE164(row.Phone),
		})
		if err == nil {
			result.Succeeded++
			continue
		}
		if errors.Is(err, iterable.ErrMissingAPIKey) {
			return result, err
		}
		o.Log.Errorw("trigger failed", "email", row.Email, "error", err)
		result.Failed++
	}

	return result, nil
}
