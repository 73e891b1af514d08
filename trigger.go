package plume

import (
	"unsafe"

	"github.com/akmonengine/plume/actor"
)

const (
	TRIGGER_ENTER EventType = iota
	CONTACT_ENTER
	TRIGGER_STAY
	CONTACT_STAY
	TRIGGER_EXIT
	CONTACT_EXIT
)

type pairKey struct {
	bodyA *actor.Body
	bodyB *actor.Body
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *actor.Body) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Trigger events
type TriggerEnterEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Contact events
type ContactEnterEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e ContactEnterEvent) Type() EventType { return CONTACT_ENTER }

type ContactStayEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e ContactStayEvent) Type() EventType { return CONTACT_STAY }

type ContactExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e ContactExitEvent) Type() EventType { return CONTACT_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Overlap tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContacts is called each step to track active pairs; contacts
// involving a trigger body are filtered out of the returned slice
func (e *Events) recordContacts(contacts []*Contact) []*Contact {
	n := 0
	for _, c := range contacts {
		pair := makePairKey(c.BodyA, c.BodyB)
		e.currentActivePairs[pair] = true

		if c.BodyA.IsTrigger == false && c.BodyB.IsTrigger == false {
			contacts[n] = c
			n++
		}
	}
	contacts = contacts[:n]

	return contacts
}

// processOverlapEvents compares current and previous pairs to detect Enter/Stay/Exit
// Should be called once per step
func (e *Events) processOverlapEvents() {
	// Detect Enter and Stay events
	for pair := range e.currentActivePairs {
		isTrigger := pair.bodyA.IsTrigger || pair.bodyB.IsTrigger

		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			if isTrigger {
				e.buffer = append(e.buffer, TriggerStayEvent{
					BodyA: pair.bodyA,
					BodyB: pair.bodyB,
				})
			} else {
				e.buffer = append(e.buffer, ContactStayEvent{
					BodyA: pair.bodyA,
					BodyB: pair.bodyB,
				})
			}
		} else {
			// New pair, Enter
			if isTrigger {
				e.buffer = append(e.buffer, TriggerEnterEvent{
					BodyA: pair.bodyA,
					BodyB: pair.bodyB,
				})
			} else {
				e.buffer = append(e.buffer, ContactEnterEvent{
					BodyA: pair.bodyA,
					BodyB: pair.bodyB,
				})
			}
		}
	}

	// Detect Exit events
	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			// Pair was active but is no longer, Exit
			isTrigger := pair.bodyA.IsTrigger || pair.bodyB.IsTrigger

			if isTrigger {
				e.buffer = append(e.buffer, TriggerExitEvent{
					BodyA: pair.bodyA,
					BodyB: pair.bodyB,
				})
			} else {
				e.buffer = append(e.buffer, ContactExitEvent{
					BodyA: pair.bodyA,
					BodyB: pair.bodyB,
				})
			}
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processOverlapEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
