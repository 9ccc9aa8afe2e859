package event

const ExpenseSubmittedDestination string = "expense_submitted"
const ExpenseSubmittedConsumerNotification string = "expense_submitted_notification"

type ExpenseSubmittedMessage struct {
	ExpenseID     int64  `json:"expense_id,string"`
	UserID        int64  `json:"user_id"`
	UserEmail     string `json:"user_email"`
	Category      string `json:"category"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	CorrelationID string `json:"correlation_id"`
}
