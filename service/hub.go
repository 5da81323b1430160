package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

var (
	ErrDuplicate         = errors.New("service already registered")
	ErrMissingDependency = errors.New("dependency not registered")
	ErrCycle             = errors.New("dependency cycle")
	ErrNotInitialized    = errors.New("services not initialized")
)

// Hub owns the orrery's services and runs them in dependency order
type Hub struct {
	mu      sync.Mutex
	byName  map[string]Service
	names   []string // registration order
	order   []string // dependency order, nil until InitAll
	running []string // started, in start order
}

func NewHub() *Hub {
	return &Hub{byName: make(map[string]Service)}
}

// Register adds svc; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, ok := h.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.byName[name] = svc
	h.names = append(h.names, name)
	h.order = nil
	return nil
}

// Names lists services in registration order
func (h *Hub) Names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.names...)
}

// InitAll orders services and initializes each with args
// A failing Init stops the ones already initialized, newest first
func (h *Hub) InitAll(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		order, err := h.resolve()
		if err != nil {
			return err
		}
		h.order = order
	}

	for i, name := range h.order {
		if err := h.byName[name].Init(args...); err != nil {
			h.stop(h.order[:i])
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

// StartAll starts services in dependency order
// A failing Start stops the ones already running, newest first
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		return ErrNotInitialized
	}
	for _, name := range h.order {
		if err := h.byName[name].Start(); err != nil {
			h.stop(h.running)
			h.running = nil
			return fmt.Errorf("start %s: %w", name, err)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops every running service, newest first, and joins their errors
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.stop(h.running)
	h.running = nil
	return err
}

func (h *Hub) stop(names []string) error {
	var errs []error
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.byName[names[i]].Stop(); err != nil {
			log.Printf("service: stop %s: %v", names[i], err)
			errs = append(errs, fmt.Errorf("stop %s: %w", names[i], err))
		}
	}
	return errors.Join(errs...)
}

// resolve returns a dependency-first order, visiting in registration order
func (h *Hub) resolve() ([]string, error) {
	const (
		unseen = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.names))
	order := make([]string, 0, len(h.names))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			start := 0
			for path[start] != name {
				start++
			}
			return fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(path[start:], " -> "), name)
		}

		state[name] = visiting
		path = append(path, name)
		for _, dep := range h.byName[name].Dependencies() {
			if _, ok := h.byName[dep]; !ok {
				return fmt.Errorf("%w: %s needs %s", ErrMissingDependency, name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
