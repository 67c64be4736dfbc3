package statemachine

import (
	"errors"

	"mealhub-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "chef", "user"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Chef accepts the order
	{From: models.OrderPending, To: models.OrderConfirmed, Actor: "chef"},
	// Chef or the ordering user can cancel before confirmation
	{From: models.OrderPending, To: models.OrderCancelled, Actor: "chef"},
	{From: models.OrderPending, To: models.OrderCancelled, Actor: "user"},
	// Chef finishes the order
	{From: models.OrderConfirmed, To: models.OrderCompleted, Actor: "chef"},
	{From: models.OrderConfirmed, To: models.OrderCancelled, Actor: "chef"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + actor + "'",
	)
}
