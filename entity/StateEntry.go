package entity

import (
	"gorm.io/gorm"
)

// StateEntry is one key of a browser session's persisted state. The
// storefront kept this in localStorage; here each session gets its own
// string-keyed JSON rows.
type StateEntry struct {
	gorm.Model
	SessionID string `json:"-" gorm:"index:idx_state_session_key,unique"`
	Key       string `json:"key" gorm:"index:idx_state_session_key,unique"`
	Value     string `json:"value"`
}
