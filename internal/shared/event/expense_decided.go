package event

const ExpenseDecidedDestination string = "expense_decided"
const ExpenseDecidedConsumerNotification string = "expense_decided_notification"

type ExpenseDecidedMessage struct {
	ExpenseID     int64  `json:"expense_id,string"`
	UserID        int64  `json:"user_id"`
	UserEmail     string `json:"user_email"`
	Decision      string `json:"decision"`
	DecidedBy     int64  `json:"decided_by"`
	Note          string `json:"note,omitempty"`
	CorrelationID string `json:"correlation_id"`
}
