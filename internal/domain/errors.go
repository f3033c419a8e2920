package domain

import "errors"

// Kind classifies an error for the transport layer
type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindNotAllowed   Kind = "method_not_allowed"
	KindInternal     Kind = "internal"
)

// Error is a classified, user-facing error
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds an Error of the given kind
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// BadRequest builds a KindBadRequest error
func BadRequest(message string) *Error { return NewError(KindBadRequest, message) }

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	ErrUserExists       = NewError(KindConflict, "login id is already taken")
	ErrUserNotFound     = NewError(KindNotFound, "user does not exist")
	ErrPasswordMismatch = NewError(KindBadRequest, "password and verifyPassword do not match")
	ErrWrongPassword    = NewError(KindUnauthorized, "password does not match")
	ErrInvalidToken     = NewError(KindUnauthorized, "invalid or expired token")
	ErrMissingToken     = NewError(KindUnauthorized, "missing or invalid Authorization header")
	ErrAdminRequired    = NewError(KindForbidden, "admin access required")
	ErrRouteNotFound    = NewError(KindNotFound, "route does not exist")
	ErrMethodNotAllowed = NewError(KindNotAllowed, "method is not allowed on this route")

	ErrCharacterNotFound  = NewError(KindNotFound, "character does not exist")
	ErrCharacterNameTaken = NewError(KindConflict, "character name is already taken")
	ErrNotOwner           = NewError(KindForbidden, "character belongs to another account")

	ErrItemNotFound = NewError(KindNotFound, "item does not exist")
	ErrItemExists   = NewError(KindConflict, "item code is already registered")
	ErrEmptyPatch   = NewError(KindBadRequest, "no item fields to update")

	ErrInventoryEntryNotFound = NewError(KindNotFound, "item is not in the inventory")
	ErrInventoryShort         = NewError(KindNotFound, "inventory holds fewer items than requested")
	ErrInsufficientItems      = NewError(KindConflict, "not enough items in the inventory")
	ErrNotInInventory         = NewError(KindConflict, "item to equip is not in the inventory")
	ErrInvalidCount           = NewError(KindBadRequest, "count must be at least 1")
	ErrInsufficientFunds      = NewError(KindConflict, "not enough money")
	ErrStackTooLarge          = NewError(KindConflict, "inventory stack would exceed the maximum count")
	ErrMoneyOverflow          = NewError(KindConflict, "money would exceed the maximum balance")

	ErrEquipmentNotFound = NewError(KindNotFound, "item is not equipped")
	ErrAlreadyEquipped   = NewError(KindConflict, "item is already equipped")
	ErrNotEquipped       = NewError(KindConflict, "item is not equipped")

	ErrEarnCooldown = NewError(KindConflict, "money was earned too recently, try again later")
)
