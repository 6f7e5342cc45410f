package constant

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

const (
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentChannelMobileMoney = "mobile_money"
	PaymentCallbackSuccess    = "success"
)

// SelectionStage is a step of the vote selection flow.
type SelectionStage string

const (
	StageNoSelection     SelectionStage = "no_selection"
	StageAmountSelected  SelectionStage = "amount_selected"
	StageNomineeChosen   SelectionStage = "nominee_chosen"
	StagePaymentPending  SelectionStage = "payment_pending"
	StagePaymentResolved SelectionStage = "payment_resolved"
)

const (
	AuditActionUserLogin        = "user_login"
	AuditActionVoteCast         = "vote_cast"
	AuditActionVoteRecordFailed = "vote_record_failed"
	AuditActionPaymentFailed    = "payment_failed"
	AuditActionConfigUpdated    = "config_updated"
)
