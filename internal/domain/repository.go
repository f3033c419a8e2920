package domain

import "context"

// Repository is the relational store capability used by the service layer.
// Lookups return the matching Err*NotFound sentinel when a row is absent.
type Repository interface {
	// Transaction runs fn against a Repository bound to one database transaction.
	// Returning an error from fn rolls every write back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	CreateUser(ctx context.Context, user *User) error
	FindUserByID(ctx context.Context, id uint) (*User, error)
	FindUserByLoginID(ctx context.Context, loginID string) (*User, error)
	SetUserRole(ctx context.Context, loginID, role string) error

	CreateItem(ctx context.Context, item *Item) error
	FindItem(ctx context.Context, code int) (*Item, error)
	ListItems(ctx context.Context) ([]ItemSummary, error)
	SaveItem(ctx context.Context, item *Item) error

	CreateCharacter(ctx context.Context, character *Character) error
	FindCharacter(ctx context.Context, id uint) (*Character, error)
	FindCharacterByName(ctx context.Context, name string) (*Character, error)
	// LockCharacter loads the character and holds a row lock until the
	// surrounding transaction ends.
	LockCharacter(ctx context.Context, id uint) (*Character, error)
	// AdjustCharacter applies delta and returns the updated row. It fails with
	// ErrInsufficientFunds when the result would leave money negative.
	AdjustCharacter(ctx context.Context, id uint, delta StatDelta) (*Character, error)
	DeleteCharacter(ctx context.Context, id uint) error

	ListInventory(ctx context.Context, characterID uint) ([]InventoryItem, error)
	FindInventory(ctx context.Context, characterID uint, itemCode int) (*InventoryEntry, error)
	// AdjustInventory adds delta to the stack and returns the remaining count.
	// Stacks reaching zero are deleted.
	AdjustInventory(ctx context.Context, characterID uint, itemCode int, delta int) (int, error)
	DeleteInventory(ctx context.Context, characterID uint) error

	ListEquipment(ctx context.Context, characterID uint) ([]EquippedItem, error)
	FindEquipment(ctx context.Context, characterID uint, itemCode int) (*EquipmentEntry, error)
	CreateEquipment(ctx context.Context, entry *EquipmentEntry) error
	DeleteEquipment(ctx context.Context, characterID uint, itemCode int) error
	DeleteAllEquipment(ctx context.Context, characterID uint) error
}
