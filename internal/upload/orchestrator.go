// Package upload drives one batch submission against the remote marketing
// service: validate, create the list, bulk-upsert the users, subscribe them.
package upload

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"offhire-sms-gateway/internal/csvimport"
	"offhire-sms-gateway/internal/iterable"
)

// Batch is one upload submission. Nothing here is persisted locally; the
// remote service is the system of record for the created list.
type Batch struct {
	ListName string
	Rows     []csvimport.Row
}

// Result reports a completed upload.
type Result struct {
	BatchID        string `json:"batchId"`
	ListID         int64  `json:"listId"`
	UsersProcessed int    `json:"usersProcessed"`
	Message        string `json:"message"`
}

// Step names for error reporting.
const (
	StepCreateList  = "createList"
	StepUpsertUsers = "upsertUsers"
	StepSubscribe   = "subscribe"
)

// ValidationError is a pre-flight rejection; no remote call was made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// StepError is a failure after validation. ListID is non-zero when the list
// had already been created: there is no rollback, so the caller needs to know
// the list exists even though later steps failed.
type StepError struct {
	Step   string
	ListID int64
	Err    error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type Orchestrator struct {
	Gateway iterable.Gateway
	Log     *zap.SugaredLogger
}

func NewOrchestrator(gateway iterable.Gateway, log *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{Gateway: gateway, Log: log}
}

// Run executes the batch steps strictly in order, stopping at the first
// failure. Steps already completed are not undone.
func (o *Orchestrator) Run(batch Batch) (*Result, error) {
	if err := validate(batch); err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	o.Log.Infow("uploading batch", "batch", batchID, "list", batch.ListName, "rows", len(batch.Rows))

	listID, err := o.Gateway.CreateList(batch.ListName)
	if err != nil {
		o.Log.Errorw("list creation failed", "batch", batchID, "error", err)
		return nil, &StepError{Step: StepCreateList, Err: err}
	}

	users := make([]iterable.User, 0, len(batch.Rows))
	emails := make([]string, 0, len(batch.Rows))
	for _, row := range batch.Rows {
		users = append(users, iterable.User{
			Email: row.Email,
			DataFields: map[string]string{
				"customerName":   row.CustomerName,
				"contractId":     row.ContractID,
				"vehicleMake":    row.VehicleMake,
				"vehicleModel":   row.VehicleModel,
				"pickupLocation": row.PickupLocation,
				"returnDate":     row.ReturnDate,
				"phoneNumber":    iterable.FormatE164(row.Phone),
			},
		})
		emails = append(emails, row.Email)
	}

	if err := o.Gateway.BulkUpsertUsers(users); err != nil {
		o.Log.Errorw("user upsert failed", "batch", batchID, "list", listID, "error", err)
		return nil, &StepError{Step: StepUpsertUsers, ListID: listID, Err: err}
	}

	if err := o.Gateway.Subscribe(listID, emails); err != nil {
		o.Log.Errorw("subscribe failed", "batch", batchID, "list", listID, "error", err)
		return nil, &StepError{Step: StepSubscribe, ListID: listID, Err: err}
	}

	o.Log.Infow("batch uploaded", "batch", batchID, "list", listID, "users", len(users))
	return &Result{
		BatchID:        batchID,
		ListID:         listID,
		UsersProcessed: len(users),
		Message:        fmt.Sprintf("Created list %q with %d users", batch.ListName, len(users)),
	}, nil
}

// validate re-checks at the API boundary what the parser already guarantees
// for parsed rows; rows can also arrive pre-built from the JSON entry point.
func validate(batch Batch) error {
	if batch.ListName == "" {
		return &ValidationError{msg: "List name is required"}
	}
	if len(batch.Rows) == 0 {
		return &ValidationError{msg: "Users array is required"}
	}
	for i, row := range batch.Rows {
		if row.Email == "" {
			return &ValidationError{msg: fmt.Sprintf("Row %d: email is required", i+1)}
		}
		if row.Phone == "" {
			return &ValidationError{msg: fmt.Sprintf("Row %d: phone is required", i+1)}
		}
	}
	return nil
}
