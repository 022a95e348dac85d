package redis

import "fmt"

// Key prefix for all hunt data
const keyPrefix = "swanhunt"

// Key generation functions for each entity type

// profileKey returns the Redis key for a Profile
func profileKey(email string) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, email)
}

// profileIndexKey returns the Redis key for the SET of all profile keys
func profileIndexKey() string {
	return fmt.Sprintf("%s:idx:profiles", keyPrefix)
}

// credentialKey returns the Redis key for a stored credential hash
func credentialKey(email string) string {
	return fmt.Sprintf("%s:cred:%s", keyPrefix, email)
}

// clueKey returns the Redis key for a Clue
func clueKey(id string) string {
	return fmt.Sprintf("%s:clue:%s", keyPrefix, id)
}

// clueIndexKey returns the Redis key for the SET of all clue keys
func clueIndexKey() string {
	return fmt.Sprintf("%s:idx:clues", keyPrefix)
}

// reportKey returns the Redis key for a Report
func reportKey(id string) string {
	return fmt.Sprintf("%s:report:%s", keyPrefix, id)
}

// reportIndexKey returns the Redis key for the SET of all report keys
func reportIndexKey() string {
	return fmt.Sprintf("%s:idx:reports", keyPrefix)
}

// contentKey returns the Redis key for the site content singleton
func contentKey() string {
	return fmt.Sprintf("%s:content:main", keyPrefix)
}

// rulesKey returns the Redis key for the game rules singleton
func rulesKey() string {
	return fmt.Sprintf("%s:content:rules", keyPrefix)
}

// sessionKey returns the Redis key for the current session email
func sessionKey() string {
	return fmt.Sprintf("%s:session", keyPrefix)
}
