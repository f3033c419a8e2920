package domain

// Item is a catalog entry
type Item struct {
	Code   int    `gorm:"primaryKey;autoIncrement:false"` // Caller-assigned item code
	Name   string `gorm:"size:64;not null"`
	Health int    `gorm:"not null;default:0"` // Health modifier when equipped
	Power  int    `gorm:"not null;default:0"` // Power modifier when equipped
	Price  int64  `gorm:"not null;default:0"`
}

// ItemSummary is the catalog list projection
type ItemSummary struct {
	Code  int    `json:"itemCode"`
	Name  string `json:"itemName"`
	Price int64  `json:"itemPrice"`
}

// ItemPatch carries the fields to change on a catalog item; nil fields are left alone.
type ItemPatch struct {
	Name   *string
	Health *int
	Power  *int
	Price  *int64
}

// Empty reports whether the patch changes nothing
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Health == nil && p.Power == nil && p.Price == nil
}

// Apply copies the set fields onto item
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Health != nil {
		item.Health = *p.Health
	}
	if p.Power != nil {
		item.Power = *p.Power
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
}
