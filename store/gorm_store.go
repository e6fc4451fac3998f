package store

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/entity"
)

// SessionStore persists session state as StateEntry rows.
type SessionStore struct {
	DB        *gorm.DB
	SessionID string
}

func ForSession(db *gorm.DB, sessionID string) *SessionStore {
	return &SessionStore{DB: db, SessionID: sessionID}
}

func (s *SessionStore) Get(key string, out any) (bool, error) {
	var row entity.StateEntry
	err := s.DB.Where("session_id = ? AND key = ?", s.SessionID, key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		log.Printf("state: corrupt value for %q, treating as absent: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *SessionStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var row entity.StateEntry
	err = s.DB.Where("session_id = ? AND key = ?", s.SessionID, key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = entity.StateEntry{SessionID: s.SessionID, Key: key, Value: string(raw)}
		return s.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.Value = string(raw)
	return s.DB.Save(&row).Error
}

func (s *SessionStore) Delete(key string) error {
	// Hard delete: a soft-deleted row would still occupy the unique
	// (session_id, key) index and block a later Set of the same key.
	return s.DB.Unscoped().Where("session_id = ? AND key = ?", s.SessionID, key).
		Delete(&entity.StateEntry{}).Error
}
