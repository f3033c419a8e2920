package domain

// EquipmentEntry marks an item as equipped on a character. Health and Power hold
// the modifiers that were added to the character when it was equipped, so that
// unequipping reverts exactly what was applied.
type EquipmentEntry struct {
	ID          uint `gorm:"primaryKey"`
	CharacterID uint `gorm:"not null;uniqueIndex:idx_equipment_character_item"`
	ItemCode    int  `gorm:"not null;uniqueIndex:idx_equipment_character_item"`
	Health      int  `gorm:"not null;default:0"`
	Power       int  `gorm:"not null;default:0"`
}

// TableName keeps the table name short
func (EquipmentEntry) TableName() string { return "equipments" }

// EquippedItem is an equipment row joined with its catalog name
type EquippedItem struct {
	ItemCode int    `json:"itemCode"`
	ItemName string `json:"itemName"`
}
