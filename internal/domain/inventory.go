package domain

// InventoryEntry is a stack of one item held by a character. Rows never persist
// with a count below one.
type InventoryEntry struct {
	ID          uint `gorm:"primaryKey"`
	CharacterID uint `gorm:"not null;uniqueIndex:idx_inventory_character_item"`
	ItemCode    int  `gorm:"not null;uniqueIndex:idx_inventory_character_item"`
	Count       int  `gorm:"not null"`
}

// TableName keeps the table name short
func (InventoryEntry) TableName() string { return "inventories" }

// InventoryItem is an inventory row joined with its catalog name
type InventoryItem struct {
	ItemCode int    `json:"itemCode"`
	ItemName string `json:"itemName"`
	Count    int    `json:"count"`
}
