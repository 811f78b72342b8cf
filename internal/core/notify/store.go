package notify

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Subscriber is invoked with every notification passed to Show.
type Subscriber func(Notification)

// Store is the in-memory notification list. Entries are kept newest first.
// The unread count is always derived from the list and never stored.
type Store struct {
	mu          sync.Mutex
	items       []Notification
	subscribers []Subscriber

	now   func() time.Time
	newID func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Subscribe registers fn to be called after every Show.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Show records a new unread notification at the head of the list and
// dispatches it to subscribers.
func (s *Store) Show(in Input) Notification {
	severity := in.Severity
	if !severity.IsValid() {
		severity = SeverityInfo
	}

	n := Notification{
		ID:        s.newID(),
		Severity:  severity,
		Title:     in.Title,
		Message:   in.Message,
		Category:  in.Category,
		CreatedAt: s.now(),
		Action:    in.Action,
	}

	s.mu.Lock()
	s.items = slices.Insert(s.items, 0, n)
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}

	return n
}

// MarkAsRead flags the notification with the given id as read. Unknown ids
// are ignored.
func (s *Store) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.items[i].Read = true
	}
}

// MarkAllAsRead flags every notification as read.
func (s *Store) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Read = true
	}
}

// Delete removes the notification with the given id. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

// ClearAll removes every notification.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// UnreadCount returns the number of notifications not yet read.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Len returns the number of notifications in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// List returns a copy of the notifications, newest first.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Get returns the notification with the given id.
func (s *Store) Get(id string) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return Notification{}, false
}

// Successf shows a success notification.
func (s *Store) Successf(title, format string, args ...any) Notification {
	return s.show(SeveritySuccess, title, format, args...)
}

// Errorf shows an error notification.
func (s *Store) Errorf(title, format string, args ...any) Notification {
	return s.show(SeverityError, title, format, args...)
}

// Warnf shows a warning notification.
func (s *Store) Warnf(title, format string, args ...any) Notification {
	return s.show(SeverityWarning, title, format, args...)
}

// Infof shows an informational notification.
func (s *Store) Infof(title, format string, args ...any) Notification {
	return s.show(SeverityInfo, title, format, args...)
}

func (s *Store) show(severity Severity, title, format string, args ...any) Notification {
	return s.Show(Input{
		Severity: severity,
		Title:    title,
		Message:  fmt.Sprintf(format, args...),
	})
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
}
