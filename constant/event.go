package constant

type ctxKey string

const UserIDKey ctxKey = "user_id"
const SessionIDKey ctxKey = "session_id"

// Collections that publish change events.
const (
	CollectionNominees  = "nominees"
	CollectionAppConfig = "app_config"
)

type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "create"
	ChangeActionUpdate ChangeAction = "update"
	ChangeActionDelete ChangeAction = "delete"
)
