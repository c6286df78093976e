// Package view binds dashboard components to the elements they draw into.
//
// Components never talk to the terminal directly. They look elements up by
// identifier through a Binding and mutate text, tone and classes; the front
// end reads the same elements back when it draws a frame. A Binding may lack
// any element, in which case the caller skips the update.
package view

import (
	"sort"
	"sync"
)

// ID element identifier.
type ID string

const (
	MarketCap    ID = "marketCap"
	Volume       ID = "volume"
	Price        ID = "price"
	Liquidity    ID = "liquidity"
	LastUpdate   ID = "lastUpdate"
	SupplyCount  ID = "supplyCount"
	CopyButton   ID = "copyButton"
	Track        ID = "meme-track"
	Notification ID = "notification"
	Body         ID = "body"
)

// DefaultIDs every element of the dashboard layout.
var DefaultIDs = []ID{
	MarketCap, Volume, Price, Liquidity, LastUpdate,
	SupplyCount, CopyButton, Track, Notification, Body,
}

// Tone colour hint of an element.
type Tone string

const (
	ToneNeutral Tone = ""
	ToneUp      Tone = "up"
	ToneDown    Tone = "down"
	ToneSuccess Tone = "success"
	ToneFailure Tone = "failure"
	ToneWarning Tone = "warning"
)

// Element single mutable element of the page.
type Element interface {
	Text() string
	SetText(text string)
	Tone() Tone
	SetTone(tone Tone)
	AddClass(classes ...string)
	RemoveClass(classes ...string)
	HasClass(class string) bool
	Classes() []string
}

// Binding resolves element identifiers.
type Binding interface {
	// Element returns false when the element is not mounted.
	Element(id ID) (Element, bool)
}

// State copy of an element taken under the page lock.
type State struct {
	Text    string
	Tone    Tone
	Classes []string
}

// HasClass checks if the copied element carried class.
func (s State) HasClass(class string) bool {
	for _, c := range s.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Page concurrency-safe in-memory Binding.
type Page struct {
	mu       sync.RWMutex
	elements map[ID]*node
}

// NewPage creates a page with the given elements mounted.
func NewPage(ids ...ID) *Page {
	p := &Page{elements: make(map[ID]*node, len(ids))}
	p.Mount(ids...)
	return p
}

// Mount adds empty elements. Already mounted elements are left untouched.
func (p *Page) Mount(ids ...ID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		if _, ok := p.elements[id]; ok {
			continue
		}
		p.elements[id] = &node{page: p, classes: make(map[string]struct{})}
	}
}

// Unmount removes elements. Handles obtained earlier keep working but are
// no longer visible through the page.
func (p *Page) Unmount(ids ...ID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		delete(p.elements, id)
	}
}

// Element implements Binding.
func (p *Page) Element(id ID) (Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n, ok := p.elements[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// State returns a copy of the element.
func (p *Page) State(id ID) (State, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n, ok := p.elements[id]
	if !ok {
		return State{}, false
	}
	return State{Text: n.text, Tone: n.tone, Classes: n.sortedClasses()}, true
}

type node struct {
	page    *Page
	text    string
	tone    Tone
	classes map[string]struct{}
}

func (n *node) Text() string {
	n.page.mu.RLock()
	defer n.page.mu.RUnlock()
	return n.text
}

func (n *node) SetText(text string) {
	n.page.mu.Lock()
	defer n.page.mu.Unlock()
	n.text = text
}

func (n *node) Tone() Tone {
	n.page.mu.RLock()
	defer n.page.mu.RUnlock()
	return n.tone
}

func (n *node) SetTone(tone Tone) {
	n.page.mu.Lock()
	defer n.page.mu.Unlock()
	n.tone = tone
}

func (n *node) AddClass(classes ...string) {
	n.page.mu.Lock()
	defer n.page.mu.Unlock()
	for _, c := range classes {
		n.classes[c] = struct{}{}
	}
}

func (n *node) RemoveClass(classes ...string) {
	n.page.mu.Lock()
	defer n.page.mu.Unlock()
	for _, c := range classes {
		delete(n.classes, c)
	}
}

func (n *node) HasClass(class string) bool {
	n.page.mu.RLock()
	defer n.page.mu.RUnlock()
	_, ok := n.classes[class]
	return ok
}

func (n *node) Classes() []string {
	n.page.mu.RLock()
	defer n.page.mu.RUnlock()
	return n.sortedClasses()
}

// sortedClasses must be called with the page lock held.
func (n *node) sortedClasses() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
