// Package practice implements the practice engine: queue construction
// from a card pool, multiple-choice distractor sampling, and the session
// state machine that records results through an injected card saver.
package practice

import (
	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/exercise"
)

// Item is one (card, exercise type) unit of work in the session queue.
type Item struct {
	Card card.Card
	Type exercise.Type
}

// Same reports item identity: two items are the same when they reference
// the same card ID and exercise type, even if the card payloads differ.
func (i Item) Same(other Item) bool {
	return i.Card.ID == other.Card.ID && i.Type == other.Type
}
