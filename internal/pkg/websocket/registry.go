package websocket

import "sync"

// Registry tracks at most one live connection per student. A student opening
// a second connection silently replaces the first.
type Registry struct {
	mu      sync.RWMutex
	clients map[int64]*Client
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[int64]*Client)}
}

// Register binds the client to its student id, displacing any previous
// connection for the same student. The displaced client is returned so the
// caller can close it.
func (r *Registry) Register(client *Client) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := r.clients[client.studentID]
	r.clients[client.studentID] = client
	return previous
}

// Remove unbinds the client, but only if it is still the registered one. A
// client replaced by a newer connection must not evict its successor.
func (r *Registry) Remove(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clients[client.studentID] == client {
		delete(r.clients, client.studentID)
	}
}

// Send delivers the payload to the student's connection if one exists.
// Offline students are skipped; the return value reports delivery.
func (r *Registry) Send(studentID int64, payload []byte) bool {
	r.mu.RLock()
	client := r.clients[studentID]
	r.mu.RUnlock()

	if client == nil {
		return false
	}
	return client.enqueue(payload)
}

// Connected reports whether the student has a live connection.
func (r *Registry) Connected(studentID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[studentID] != nil
}
