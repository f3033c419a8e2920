package domain

import "time"

// Roles a user can hold
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User Model
type User struct {
	ID         uint        `gorm:"primaryKey"`                                    // Primary key (userId)
	LoginID    string      `gorm:"size:64;uniqueIndex;not null"`                  // Unique login id
	Password   string      `gorm:"not null"`                                      // Hashed password
	Name       string      `gorm:"size:64;not null"`                              // Display name
	Role       string      `gorm:"size:16;not null;default:user"`                 // Role: user or admin
	CreatedAt  time.Time                                                          // Registration time
	Characters []Character `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-many relationship with Character
}
