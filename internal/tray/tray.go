// Package tray provides the menu-bar icon using getlantern/systray.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

const (
	titleIdle   = "KT"
	titleActive = "KT●"
)

// MenuItem represents a menu item
type MenuItem struct {
	ID       int
	Title    string
	Checkbox bool
	Checked  bool
	Callback func()
	item     *systray.MenuItem
}

// Tray manages the icon, a status line and the menu. Items are added before
// Run; state setters may be called from any goroutine.
type Tray struct {
	tooltip string
	items   []*MenuItem
	quitCh  chan struct{}

	mu      sync.Mutex
	ready   bool
	status  string
	active  bool
	statusI *systray.MenuItem
}

// New creates a new system tray
func New(tooltip string) *Tray {
	return &Tray{
		tooltip: tooltip,
		items:   make([]*MenuItem, 0),
		quitCh:  make(chan struct{}),
	}
}

// AddMenuItem adds a clickable item and returns its ID.
func (t *Tray) AddMenuItem(title string, callback func()) int {
	return t.add(&MenuItem{Title: title, Callback: callback})
}

// AddCheckbox adds a checkable item. The callback receives the new state.
func (t *Tray) AddCheckbox(title string, checked bool, callback func(bool)) int {
	mi := &MenuItem{Title: title, Checkbox: true, Checked: checked}
	mi.Callback = func() {
		t.mu.Lock()
		mi.Checked = !mi.Checked
		now := mi.Checked
		t.mu.Unlock()
		t.applyChecked(mi)
		if callback != nil {
			callback(now)
		}
	}
	return t.add(mi)
}

func (t *Tray) add(mi *MenuItem) int {
	mi.ID = len(t.items)
	t.items = append(t.items, mi)
	return mi.ID
}

// AddSeparator adds a separator to the menu
func (t *Tray) AddSeparator() {
	t.items = append(t.items, nil) // nil indicates separator
}

// Item returns the item with id, or nil.
func (t *Tray) Item(id int) *MenuItem {
	if id < 0 || id >= len(t.items) {
		return nil
	}
	return t.items[id]
}

// SetItemChecked sets the checked state of a checkbox item.
func (t *Tray) SetItemChecked(id int, checked bool) {
	mi := t.Item(id)
	if mi == nil || !mi.Checkbox {
		return
	}
	t.mu.Lock()
	mi.Checked = checked
	t.mu.Unlock()
	t.applyChecked(mi)
}

func (t *Tray) applyChecked(mi *MenuItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready || mi.item == nil {
		return
	}
	if mi.Checked {
		mi.item.Check()
	} else {
		mi.item.Uncheck()
	}
}

// SetStatus updates the disabled status line at the top of the menu.
func (t *Tray) SetStatus(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = text
	if t.ready {
		t.statusI.SetTitle(text)
	}
}

// Status returns the current status line.
func (t *Tray) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// SetActive switches the menu-bar title to show trackpad mode.
func (t *Tray) SetActive(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = active
	if t.ready {
		systray.SetTitle(titleFor(active))
	}
}

func titleFor(active bool) string {
	if active {
		return titleActive
	}
	return titleIdle
}

// Run starts the tray event loop and blocks until Stop. It must be called
// from the main goroutine. onReady runs once the menu exists.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.setupMenu()
		if onReady != nil {
			onReady()
		}
	}, func() {
		close(t.quitCh)
	})
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	t.mu.Lock()
	systray.SetIcon(Icon())
	systray.SetTooltip(t.tooltip)
	systray.SetTitle(titleFor(t.active))

	t.statusI = systray.AddMenuItem(t.status, "")
	t.statusI.Disable()
	systray.AddSeparator()

	for _, menuItem := range t.items {
		if menuItem == nil {
			systray.AddSeparator()
			continue
		}
		if menuItem.Checkbox {
			menuItem.item = systray.AddMenuItemCheckbox(menuItem.Title, "", menuItem.Checked)
		} else {
			menuItem.item = systray.AddMenuItem(menuItem.Title, "")
		}
	}
	t.ready = true
	t.mu.Unlock()

	for _, menuItem := range t.items {
		if menuItem == nil || menuItem.Callback == nil {
			continue
		}
		go func(mi *MenuItem) {
			for {
				select {
				case <-mi.item.ClickedCh:
					mi.Callback()
				case <-t.quitCh:
					return
				}
			}
		}(menuItem)
	}
}

// Stop stops the tray
func (t *Tray) Stop() {
	systray.Quit()
}
