package board

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/klokku/eventboard/pkg/event"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed templates/index.html
var indexHTML []byte

const (
	listSelector   = "#event-list"
	bannerSelector = "#error-message"
	inputSelector  = "#title"

	classLoading = "loading"
	classMuted   = "muted"
	classError   = "error"
	classShow    = "show"
)

type EntryKind string

const (
	KindEvent       EntryKind = "event"
	KindLoading     EntryKind = "loading"
	KindPlaceholder EntryKind = "placeholder"
	KindError       EntryKind = "error"
)

type Entry struct {
	ID   event.ID  `json:"id,omitempty"`
	Text string    `json:"text"`
	Kind EntryKind `json:"kind"`
}

type Banner struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}

// View is a read-only copy of what a page currently shows.
type View struct {
	Entries      []Entry `json:"entries"`
	Banner       Banner  `json:"banner"`
	Input        string  `json:"input"`
	InputFocused bool    `json:"inputFocused"`
}

// page is the UI tree of one board. It is not safe for concurrent use; Board
// serialises every access.
type page struct {
	doc *goquery.Document
}

func newPage(hideAfter time.Duration) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(indexHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	p := &page{doc: doc}
	p.banner().SetAttr("style", fmt.Sprintf("--hide-after: %dms", hideAfter.Milliseconds()))
	return p, nil
}

func (p *page) list() *goquery.Selection {
	return p.doc.Find(listSelector)
}

func (p *page) banner() *goquery.Selection {
	return p.doc.Find(bannerSelector)
}

func (p *page) input() *goquery.Selection {
	return p.doc.Find(inputSelector)
}

func (p *page) clearList() {
	p.list().Empty()
}

// replaceList swaps the whole list for a single synthetic entry.
func (p *page) replaceList(text, class string) {
	p.clearList()
	p.appendPlaceholder(text, class)
}

func (p *page) appendPlaceholder(text, class string) {
	p.list().AppendNodes(entryNode(text, html.Attribute{Key: "class", Val: class}))
}

func (p *page) appendEvent(e event.Event) {
	p.list().AppendNodes(entryNode(e.Title, html.Attribute{Key: "data-id", Val: e.ID.String()}))
}

func (p *page) hasLoadingEntry() bool {
	return p.list().ChildrenFiltered("li." + classLoading).Length() > 0
}

func (p *page) firstEntryText() (string, bool) {
	first := p.list().ChildrenFiltered("li").First()
	if first.Length() == 0 {
		return "", false
	}
	return first.Text(), true
}

func (p *page) showBanner(message string) {
	p.banner().SetText(message).AddClass(classShow)
}

func (p *page) hideBanner() {
	p.banner().RemoveClass(classShow)
}

func (p *page) setInput(value string) {
	p.input().SetAttr("value", value)
}

func (p *page) clearInput() {
	p.input().RemoveAttr("value")
}

func (p *page) focusInput() {
	p.input().SetAttr("autofocus", "")
}

func (p *page) view() View {
	v := View{Entries: []Entry{}}
	p.list().ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		v.Entries = append(v.Entries, entryFromSelection(li))
	})
	banner := p.banner()
	v.Banner = Banner{Visible: banner.HasClass(classShow), Message: banner.Text()}
	input := p.input()
	v.Input, _ = input.Attr("value")
	_, v.InputFocused = input.Attr("autofocus")
	return v
}

func (p *page) html() (string, error) {
	return p.doc.Html()
}

func entryFromSelection(li *goquery.Selection) Entry {
	text := strings.TrimSpace(li.Text())
	if id, ok := li.Attr("data-id"); ok {
		return Entry{ID: event.ID(id), Text: li.Text(), Kind: KindEvent}
	}
	switch {
	case li.HasClass(classLoading):
		return Entry{Text: text, Kind: KindLoading}
	case li.HasClass(classError):
		return Entry{Text: text, Kind: KindError}
	default:
		return Entry{Text: text, Kind: KindPlaceholder}
	}
}

// entryNode builds a list item whose content is a text node, so titles are
// never interpreted as markup.
func entryNode(text string, attrs ...html.Attribute) *html.Node {
	li := &html.Node{
		Type:     html.ElementNode,
		Data:     "li",
		DataAtom: atom.Li,
		Attr:     attrs,
	}
	li.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return li
}
