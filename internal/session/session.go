// Package session holds the observable current-owner state. The registry
// keeps one slot per owner identity and publishes sign-in, refresh, and
// sign-out events to subscribers. Slots are mutated only through the auth
// service; all mutations are serialized behind the registry's mutex.
package session

import (
	"sync"

	"nestegg/internal/models"
)

// EventType identifies a session state transition.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventRefreshed EventType = "refreshed"
	EventSignedOut EventType = "signed_out"
)

// Event describes a single session state change.
type Event struct {
	Type EventType
	User *models.User
}

// subscriberBuffer bounds each subscriber channel. Events to a full
// subscriber are dropped rather than blocking the slot mutation.
const subscriberBuffer = 16

// Registry tracks the current owner for each active session.
type Registry struct {
	mu          sync.Mutex
	current     map[string]*models.User
	subscribers map[chan Event]struct{}
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		current:     make(map[string]*models.User),
		subscribers: make(map[chan Event]struct{}),
	}
}

// Current returns the owner bound to the given identity id, or nil when no
// session slot exists for it.
func (r *Registry) Current(identityID string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current[identityID]
}

// SignIn binds the owner to its session slot and publishes a signed-in
// event. A repeat sign-in for the same identity refreshes the slot instead.
func (r *Registry) SignIn(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	eventType := EventSignedIn
	if _, ok := r.current[user.ID]; ok {
		eventType = EventRefreshed
	}
	r.current[user.ID] = user
	r.publish(Event{Type: eventType, User: user})
}

// Refresh replaces the slot contents after a profile re-fetch. It is a
// no-op when no slot exists for the identity.
func (r *Registry) Refresh(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.current[user.ID]; !ok {
		return
	}
	r.current[user.ID] = user
	r.publish(Event{Type: EventRefreshed, User: user})
}

// SignOut clears the slot for the identity and publishes a signed-out
// event. Clearing an absent slot is a no-op.
func (r *Registry) SignOut(identityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.current[identityID]
	if !ok {
		return
	}
	delete(r.current, identityID)
	r.publish(Event{Type: EventSignedOut, User: user})
}

// Subscribe registers a new listener for session events. The caller must
// eventually Unsubscribe the returned channel.
func (r *Registry) Subscribe() <-chan Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	r.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (r *Registry) Unsubscribe(ch <-chan Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sub := range r.subscribers {
		if sub == ch {
			delete(r.subscribers, sub)
			close(sub)
			return
		}
	}
}

// publish delivers an event to every subscriber without blocking.
// Callers must hold r.mu.
func (r *Registry) publish(event Event) {
	for sub := range r.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}
