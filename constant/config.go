package constant

type ConfigValueType string

const (
	ConfigTypeString  ConfigValueType = "string"
	ConfigTypeNumber  ConfigValueType = "number"
	ConfigTypeBoolean ConfigValueType = "boolean"
	ConfigTypeJSON    ConfigValueType = "json"
)

// app_config keys
const (
	ConfigKeyAppTitle          = "app_title"
	ConfigKeyAppSubtitle       = "app_subtitle"
	ConfigKeyVotingEnabled     = "voting_enabled"
	ConfigKeyPaystackPublicKey = "paystack_public_key"
	ConfigKeyCurrency          = "currency"
	ConfigKeyCurrencySymbol    = "currency_symbol"
	ConfigKeyVoteRates         = "vote_conversion_rates"
	ConfigKeyMinVoteAmount     = "min_vote_amount"
	ConfigKeyMaxVoteAmount     = "max_vote_amount"
)

const (
	DefaultAppTitle       = "Voting System"
	DefaultAppSubtitle    = "Cast your votes"
	DefaultCurrency       = "GHS"
	DefaultCurrencySymbol = "₵"
	DefaultNomineeImage   = "./logo.jpeg"
)
