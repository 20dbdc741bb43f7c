package constvars

// Session storage keys. SessionLegacyUserKey is only read to migrate
// sessions written by older page scripts.
const (
	SessionTokenKey      = "token"
	SessionUserKey       = "userData"
	SessionLegacyUserKey = "user"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreFile   = "file"
	SessionStoreRedis  = "redis"
)

const (
	UserTypePatient      = "patient"
	UserTypeProfessional = "professional"
	UserTypeAdmin        = "admin"
)

var ValidUserTypes = map[string]bool{
	UserTypePatient:      true,
	UserTypeProfessional: true,
	UserTypeAdmin:        true,
}
