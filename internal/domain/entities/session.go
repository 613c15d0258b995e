package entities

// UserRecordKey is the fixed key of the persisted user record
const UserRecordKey = "user"

// SessionKey namespaces the persisted user record per session
func SessionKey(sessionID string) string {
	return UserRecordKey + ":" + sessionID
}
