package memory

import (
	"encoding/json"
	"errors"
	"os"
)

// Message is a minimal persisted view of a chat turn.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text,omitempty"`
}

// Session is the persisted state of one chat: the text transcript plus
// the tool names discovered via search so far.
type Session struct {
	Messages   []Message `json:"messages"`
	Discovered []string  `json:"discovered,omitempty"`
}

// LoadSession reads a session from path. A missing file is not an error;
// it yields an empty session.
func LoadSession(path string) (Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func SaveSession(path string, s Session) error {
	b, err := json.MarshalIndent(s, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
