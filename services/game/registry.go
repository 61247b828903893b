package game

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Options configure every room created by a Registry.
type Options struct {
	// DealerTick paces the dealer's draws. Zero runs the dealer without delay.
	DealerTick time.Duration
	// MaxPlayers caps a room's roster. Zero means unlimited.
	MaxPlayers int
	// NewDeck returns a ready-to-deal deck. It must be safe for concurrent
	// use. Defaults to a freshly shuffled 52-card deck.
	NewDeck func() *Deck
	// Rand seeds the default shuffler. Ignored when NewDeck is set.
	Rand        *rand.Rand
	Broadcaster Broadcaster
	// OnRemove is called, outside any lock, after an emptied room has been
	// dropped from the registry.
	OnRemove func(code string)
}

func (o Options) deckFactory() *Deck {
	return o.NewDeck()
}

// shuffler guards a single rng shared by all rooms.
type shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *shuffler) newDeck() *Deck {
	d := NewDeck()
	s.mu.Lock()
	d.Shuffle(s.rng)
	s.mu.Unlock()
	return d
}

// Registry owns the rooms of one process, keyed by room code.
type Registry struct {
	opts Options

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry(opts Options) *Registry {
	if opts.NewDeck == nil {
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		s := &shuffler{rng: rng}
		opts.NewDeck = s.newDeck
	}
	return &Registry{
		opts:  opts,
		rooms: make(map[string]*Room),
	}
}

// GetOrCreate returns the room for code, creating an empty one on first use.
func (reg *Registry) GetOrCreate(code string) *Room {
	reg.mu.RLock()
	room, ok := reg.rooms[code]
	reg.mu.RUnlock()
	if ok {
		return room
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if room, ok := reg.rooms[code]; ok {
		return room
	}
	room = newRoom(code, reg.opts)
	reg.rooms[code] = room
	return room
}

func (reg *Registry) Get(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// Codes lists the live room codes in lexical order.
func (reg *Registry) Codes() []string {
	reg.mu.RLock()
	codes := make([]string, 0, len(reg.rooms))
	for code := range reg.rooms {
		codes = append(codes, code)
	}
	reg.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// RemoveIfEmpty drops the room for code when nobody is seated. A join racing
// with the removal sees ErrRoomClosed and retries on a fresh room.
func (reg *Registry) RemoveIfEmpty(code string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	room, ok := reg.rooms[code]
	if !ok || !room.closeIfEmpty() {
		return false
	}
	delete(reg.rooms, code)
	return true
}

// Close stops every dealer task. Rooms reject joins afterwards.
func (reg *Registry) Close() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for code, room := range reg.rooms {
		room.shutdown()
		delete(reg.rooms, code)
	}
}
