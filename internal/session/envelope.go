package session

import (
	"encoding/json"
	"fmt"

	"github.com/openshelf/openshelf/internal/domain/auth"
)

// RecordVersion is the schema version written into the persisted envelope.
const RecordVersion = 0

// persistedState is the subset of session state that survives restarts.
// Only these three fields are part of the storage contract.
type persistedState struct {
	Token           string     `json:"token"`
	User            *auth.User `json:"user"`
	IsAuthenticated bool       `json:"isAuthenticated"`
}

// envelope wraps the persisted state the way the reference persistence
// helper does; fields beyond State are implementation detail.
type envelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

// EncodeRecord serializes a session into the durable storage record.
func EncodeRecord(s auth.Session) ([]byte, error) {
	env := envelope{
		State: persistedState{
			Token:           s.Token,
			User:            s.User,
			IsAuthenticated: s.IsAuthenticated,
		},
		Version: RecordVersion,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode session record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses a durable storage record back into a session.
// A record that is not valid JSON, or whose derived flag disagrees with the
// token/user pair, is rejected; callers treat that as an absent record.
func DecodeRecord(data []byte) (auth.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return auth.Session{}, fmt.Errorf("decode session record: %w", err)
	}

	sess := auth.Session{
		Token:           env.State.Token,
		User:            env.State.User,
		IsAuthenticated: env.State.IsAuthenticated,
	}
	if !sess.Consistent() {
		return auth.Session{}, fmt.Errorf("decode session record: inconsistent state")
	}
	return sess, nil
}

// TokenFromRecord extracts just the bearer token from a durable record.
// Used by the request interceptor, which only needs the credential.
func TokenFromRecord(data []byte) (string, error) {
	sess, err := DecodeRecord(data)
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}
