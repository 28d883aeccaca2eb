package engine

import "fmt"

// InsufficientCoinsError is returned when a purchase costs more than the
// player holds.
type InsufficientCoinsError struct {
	Price int
	Coins int
}

func (e InsufficientCoinsError) Error() string {
	return fmt.Sprintf("not enough coins: need %d, have %d", e.Price, e.Coins)
}

// SetupIncompleteError indicates an operation that needs a finished setup
// flow (e.g. a check-in before any schedule exists).
type SetupIncompleteError struct {
	What string
}

func (e SetupIncompleteError) Error() string {
	return fmt.Sprintf("%s setup is not completed yet", e.What)
}
