// File: utils/profile_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// ProfileSession is the explicit session context for a signed-in account.
// It is populated at login, refreshed on demand, and cleared at logout.
// Components read it instead of any ambient per-process cache.
type ProfileSession struct {
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// SaveProfileSession stores the session under the user's ID with the standard TTL.
func SaveProfileSession(client *redis.Client, session ProfileSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal profile session: %w", err)
	}
	key := ProfileSessionPrefix + session.UserID
	if err := client.Set(context.Background(), key, data, ProfileSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store profile session: %w", err)
	}
	return nil
}

// GetProfileSession fetches the session for a user, or nil when none exists.
func GetProfileSession(client *redis.Client, userID string) (*ProfileSession, error) {
	data, err := client.Get(context.Background(), ProfileSessionPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile session: %w", err)
	}
	var session ProfileSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse profile session: %w", err)
	}
	return &session, nil
}

// DeleteProfileSession clears the session at logout. Missing keys are not an error.
func DeleteProfileSession(client *redis.Client, userID string) error {
	if err := client.Del(context.Background(), ProfileSessionPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to clear profile session: %w", err)
	}
	return nil
}
