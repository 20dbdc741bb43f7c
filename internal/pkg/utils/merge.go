package utils

// Keys that identify the session user and must survive a profile overlay.
var identityKeys = map[string]bool{
	"id":        true,
	"email":     true,
	"user_type": true,
}

// MergeFields lays overlay over base and returns a new map. Null overlay
// values do not erase base values. An overlay id that differs from the base
// id is kept under profile_id.
func MergeFields(base, overlay map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(overlay))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overlay {
		if value == nil {
			continue
		}
		if identityKeys[key] {
			if _, exists := base[key]; exists {
				if key == "id" {
					merged["profile_id"] = value
				}
				continue
			}
		}
		merged[key] = value
	}
	return merged
}
