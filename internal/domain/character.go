package domain

import "time"

// Character Model
type Character struct {
	ID        uint   `gorm:"primaryKey"`                   // Primary key (characterId)
	UserID    uint   `gorm:"index;not null"`               // Foreign key to the owning User
	Name      string `gorm:"size:64;uniqueIndex;not null"` // Unique across all users
	Health    int    `gorm:"not null"`
	Power     int    `gorm:"not null"`
	Money     int64  `gorm:"not null;default:0"` // Never negative
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether userID owns the character
func (c *Character) OwnedBy(userID uint) bool {
	return userID != 0 && c.UserID == userID
}

// StatDelta is a relative change applied to a character in one statement.
type StatDelta struct {
	Health int
	Power  int
	Money  int64
}

// CharacterView is the projection returned by character lookups. Money is only
// set when the viewer owns the character.
type CharacterView struct {
	Name   string `json:"characterName"`
	Health int    `json:"health"`
	Power  int    `json:"power"`
	Money  *int64 `json:"money,omitempty"`
}

// View projects the character for the given viewer
func (c *Character) View(viewerID uint) CharacterView {
	v := CharacterView{Name: c.Name, Health: c.Health, Power: c.Power}
	if c.OwnedBy(viewerID) {
		money := c.Money
		v.Money = &money
	}
	return v
}
