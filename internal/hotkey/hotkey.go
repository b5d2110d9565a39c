// Package hotkey provides the global pause hotkey.
package hotkey

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultPause is the combination that toggles routing when none is
// configured. It avoids Fn and Control+Option so it still works while
// trackpad mode is held.
const DefaultPause = "Cmd+Shift+Escape"

var (
	// ErrInvalid is returned for combinations that cannot be parsed.
	ErrInvalid = errors.New("hotkey: invalid combination")
	// ErrUnsupportedPlatform is returned where global hotkeys are unavailable.
	ErrUnsupportedPlatform = errors.New("hotkey: platform not supported")
)

// Modifier is a platform-neutral modifier name.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModCmd   Modifier = "cmd"
)

var modifierAliases = map[string]Modifier{
	"CTRL":    ModCtrl,
	"CONTROL": ModCtrl,
	"SHIFT":   ModShift,
	"ALT":     ModAlt,
	"OPTION":  ModAlt,
	"OPT":     ModAlt,
	"CMD":     ModCmd,
	"COMMAND": ModCmd,
	"SUPER":   ModCmd,
	"WIN":     ModCmd,
}

var keyAliases = map[string]string{
	"ESC":    "ESCAPE",
	"ENTER":  "RETURN",
	"SPACE":  "SPACE",
	"DEL":    "DELETE",
	"LEFT":   "LEFT",
	"RIGHT":  "RIGHT",
	"UP":     "UP",
	"DOWN":   "DOWN",
	"TAB":    "TAB",
	"RETURN": "RETURN",
	"ESCAPE": "ESCAPE",
	"DELETE": "DELETE",
}

// Combo is a parsed hotkey: one or more modifiers and exactly one key.
type Combo struct {
	Modifiers []Modifier
	Key       string
}

func (c Combo) String() string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, m := range c.Modifiers {
		parts = append(parts, string(m))
	}
	return strings.Join(append(parts, strings.ToLower(c.Key)), "+")
}

// Parse reads combinations like "Cmd+Shift+Escape" or "ctrl+alt+p".
// Modifier names are case-insensitive and may repeat. The key must be a
// letter, a digit, F1-F12 or one of the named keys.
func Parse(s string) (Combo, error) {
	parts := strings.Split(strings.ToUpper(s), "+")

	var combo Combo
	seen := make(map[Modifier]bool)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Combo{}, fmt.Errorf("%w: empty part in %q", ErrInvalid, s)
		}
		last := i == len(parts)-1
		if mod, ok := modifierAliases[p]; ok && !last {
			if !seen[mod] {
				seen[mod] = true
				combo.Modifiers = append(combo.Modifiers, mod)
			}
			continue
		}
		if !last {
			return Combo{}, fmt.Errorf("%w: %q is not a modifier", ErrInvalid, p)
		}
		key, ok := normalizeKey(p)
		if !ok {
			return Combo{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, p)
		}
		combo.Key = key
	}
	if len(combo.Modifiers) == 0 {
		return Combo{}, fmt.Errorf("%w: %q needs at least one modifier", ErrInvalid, s)
	}
	return combo, nil
}

func normalizeKey(p string) (string, bool) {
	if named, ok := keyAliases[p]; ok {
		return named, true
	}
	if len(p) == 1 && ((p[0] >= 'A' && p[0] <= 'Z') || (p[0] >= '0' && p[0] <= '9')) {
		return p, true
	}
	if len(p) >= 2 && p[0] == 'F' {
		n, err := strconv.Atoi(p[1:])
		if err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == p[1:] {
			return p, true
		}
	}
	return "", false
}

// debounceInterval swallows key-repeat presses of a held combination.
const debounceInterval = 300 * time.Millisecond

// Handler registers one global hotkey and calls onPress when it fires.
type Handler struct {
	mu      sync.Mutex
	onPress func()
	logger  *slog.Logger
	reg     registration
	current Combo
	stopCh  chan struct{}
	now     func() time.Time
}

// registration is the platform hotkey behind a Handler.
type registration interface {
	Keydown() <-chan struct{}
	Unregister() error
}

// register is swapped out in tests.
var register = registerPlatform

// New creates a Handler calling onPress on each debounced press.
func New(onPress func(), logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{onPress: onPress, logger: logger, now: time.Now}
}

// Register installs combo, replacing any previous registration.
func (h *Handler) Register(combo Combo) error {
	if err := h.Unregister(); err != nil {
		h.logger.Warn("previous hotkey unregister failed", "error", err)
	}

	reg, err := register(combo)
	if err != nil {
		return fmt.Errorf("register %s: %w", combo, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.reg = reg
	h.current = combo
	h.stopCh = make(chan struct{})
	go h.listen(reg, h.stopCh)

	h.logger.Info("hotkey registered", "combo", combo.String())
	return nil
}

func (h *Handler) listen(reg registration, stopCh <-chan struct{}) {
	var lastPress time.Time
	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-reg.Keydown():
			if !ok {
				return
			}
			now := h.now()
			if now.Sub(lastPress) < debounceInterval {
				continue
			}
			lastPress = now
			if h.onPress != nil {
				h.onPress()
			}
		}
	}
}

// Unregister removes the hotkey. It is a no-op when nothing is registered.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	if h.reg == nil {
		return nil
	}
	err := h.reg.Unregister()
	h.reg = nil
	return err
}

// Current returns the registered combination.
func (h *Handler) Current() Combo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}
