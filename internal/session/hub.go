// Package session runs one websocket room per article being edited. The
// editing client streams full layout snapshots up; the hub persists them
// and fans them out to read-only viewers of the same flyer. This is a
// transport and autosave channel, not concurrent editing: the last full
// snapshot wins.
package session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/paceup/paceup/backend-go/internal/element"
	"github.com/paceup/paceup/backend-go/internal/typeid"
)

// LayoutLoader fetches the latest saved element array for an article.
type LayoutLoader func(articleID string) ([]element.Element, error)

// LayoutSaver persists an element array as a new layout revision.
type LayoutSaver func(articleID string, elements []element.Element) error

type Room struct {
	articleID string
	clients   map[string]*Client // clientID -> client
	elements  []element.Element  // last snapshot seen this session
	dirty     bool
}

func NewRoom(articleID string) *Room {
	return &Room{
		articleID: articleID,
		clients:   make(map[string]*Client),
	}
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // articleID -> room
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	loadLayout LayoutLoader
	saveLayout LayoutSaver
}

func NewHub(loader LayoutLoader, saver LayoutSaver) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		loadLayout: loader,
		saveLayout: saver,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Register hands the client to the hub loop. After Stop it returns without
// registering so a handler racing the shutdown does not block forever.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister mirrors Register for the read pump's teardown path.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Stop flushes every dirty room to storage and stops the hub loop.
func (h *Hub) Stop() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range h.rooms {
		if room.dirty && room.elements != nil {
			if err := h.saveLayout(room.articleID, room.elements); err != nil {
				slog.Error("flush layout on shutdown", "error", err, "article", room.articleID)
			}
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.ArticleID]
	if !ok {
		room = NewRoom(client.ArticleID)
		if els, err := h.loadLayout(client.ArticleID); err != nil {
			slog.Warn("load layout for room", "error", err, "article", client.ArticleID)
		} else {
			room.elements = els
		}
		h.rooms[client.ArticleID] = room
	}
	room.clients[client.ClientID] = client
	viewers := roomViewers(room)
	elements := room.elements
	h.mu.Unlock()

	// New client gets its session id first, then the current layout and
	// the viewer roster.
	welcomePayload, _ := json.Marshal(WelcomePayload{
		SessionID: typeid.NewSessionID(),
		ClientID:  client.ClientID,
	})
	client.Send(&Message{Type: TypeWelcome, ArticleID: client.ArticleID, Payload: welcomePayload})

	if elements != nil {
		syncPayload, _ := json.Marshal(LayoutPayload{Elements: elements})
		client.Send(&Message{Type: TypeLayoutSync, ArticleID: client.ArticleID, Payload: syncPayload})
	}
	statePayload, _ := json.Marshal(ViewerStatePayload{Viewers: viewers})
	client.Send(&Message{Type: TypeViewerState, Payload: statePayload})

	joinPayload, _ := json.Marshal(ViewerJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	h.broadcastToRoom(client.ArticleID, &Message{
		Type:    TypeViewerJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}, client.ClientID)

	slog.Info("session joined", "user", client.UserID, "article", client.ArticleID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.ArticleID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)

	var flush []element.Element
	if len(room.clients) == 0 {
		if room.dirty && room.elements != nil {
			flush = room.elements
		}
		delete(h.rooms, client.ArticleID)
	}
	h.mu.Unlock()

	if flush != nil {
		if err := h.saveLayout(client.ArticleID, flush); err != nil {
			slog.Error("flush layout on room close", "error", err, "article", client.ArticleID)
		}
	}

	leavePayload, _ := json.Marshal(ViewerLeavePayload{UserID: client.UserID})
	h.broadcastToRoom(client.ArticleID, &Message{
		Type:    TypeViewerLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}, "")

	slog.Info("session left", "user", client.UserID, "article", client.ArticleID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypeLayoutUpdate:
		h.handleLayoutUpdate(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) handleLayoutUpdate(sender *Client, msg *Message) {
	var payload LayoutPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendError(sender, "invalid layout payload")
		return
	}

	h.mu.Lock()
	room, ok := h.rooms[sender.ArticleID]
	if ok {
		room.elements = payload.Elements
		room.dirty = true
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	// Fan out to the other viewers before hitting storage; persistence is
	// fire-and-forget from the editor's point of view.
	h.broadcastToRoom(sender.ArticleID, &Message{
		Type:      TypeLayoutUpdate,
		ArticleID: sender.ArticleID,
		UserID:    sender.UserID,
		Seq:       msg.Seq,
		Payload:   msg.Payload,
	}, sender.ClientID)

	if err := h.saveLayout(sender.ArticleID, payload.Elements); err != nil {
		slog.Error("save layout", "error", err, "article", sender.ArticleID)
		h.sendError(sender, "save failed")
		return
	}

	h.mu.Lock()
	if room, ok := h.rooms[sender.ArticleID]; ok {
		room.dirty = false
	}
	h.mu.Unlock()

	ackPayload, _ := json.Marshal(SavedPayload{
		Seq:     msg.Seq,
		SavedAt: time.Now().UnixMilli(),
	})
	sender.Send(&Message{Type: TypeLayoutSaved, ArticleID: sender.ArticleID, Payload: ackPayload})
}

func (h *Hub) sendError(client *Client, message string) {
	payload, _ := json.Marshal(ErrorPayload{Message: message})
	client.Send(&Message{Type: TypeError, Payload: payload})
}

func (h *Hub) broadcastToRoom(articleID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[articleID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}

func roomViewers(room *Room) map[string]string {
	viewers := make(map[string]string, len(room.clients))
	for _, c := range room.clients {
		viewers[c.UserID] = c.DisplayName
	}
	return viewers
}
