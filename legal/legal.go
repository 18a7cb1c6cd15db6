package legal

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ContactEmail is the only outbound contact address shown on the page.
const ContactEmail = "madisettydharmadeep@gmail.com"

//go:embed terms.yaml
var termsYAML []byte

// Section is one numbered clause of the terms.
type Section struct {
	Order   int    `yaml:"-"`
	Icon    string `yaml:"icon"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Heading returns the numbered title, e.g. "1. User Eligibility & Age Restrictions".
func (s Section) Heading() string {
	return fmt.Sprintf("%d. %s", s.Order, s.Title)
}

type Contact struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Document is the whole terms of service page content. Its fields are only
// reachable through accessors, so a shared Document cannot be changed.
type Document struct {
	title       string
	intro       string
	lastUpdated string
	contact     Contact
	sections    []Section
}

// document is the asset layout as decoded from YAML.
type document struct {
	Title       string    `yaml:"title"`
	Intro       string    `yaml:"intro"`
	LastUpdated string    `yaml:"lastUpdated"`
	Contact     Contact   `yaml:"contact"`
	Sections    []Section `yaml:"sections"`
}

var (
	loadOnce sync.Once
	loaded   *Document
	loadErr  error
)

// Load parses the embedded terms asset. The result is shared for the life
// of the process.
func Load() (*Document, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(termsYAML)
		if loadErr != nil {
			loadErr = fmt.Errorf("error loading embedded terms: %w", loadErr)
		}
	})
	return loaded, loadErr
}

// Parse decodes a terms document and numbers its sections by position.
func Parse(data []byte) (*Document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding terms: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, errors.New("terms have no sections")
	}
	for i := range doc.Sections {
		s := &doc.Sections[i]
		s.Order = i + 1
		s.Icon = strings.TrimSpace(s.Icon)
		s.Title = strings.TrimSpace(s.Title)
		s.Content = strings.TrimSpace(s.Content)
		switch {
		case s.Icon == "":
			return nil, fmt.Errorf("section %d has no icon", s.Order)
		case s.Title == "":
			return nil, fmt.Errorf("section %d has no title", s.Order)
		case s.Content == "":
			return nil, fmt.Errorf("section %d (%s) has no content", s.Order, s.Title)
		}
	}
	if doc.LastUpdated == "" {
		return nil, errors.New("terms have no last updated date")
	}
	if doc.Contact.Title == "" {
		doc.Contact.Title = "Contact Us"
	}
	return &Document{
		title:       strings.TrimSpace(doc.Title),
		intro:       strings.TrimSpace(doc.Intro),
		lastUpdated: doc.LastUpdated,
		contact:     doc.Contact,
		sections:    doc.Sections,
	}, nil
}

func (d *Document) Title() string {
	return d.title
}

func (d *Document) Intro() string {
	return d.intro
}

// LastUpdated is the static date shown in the page footer.
func (d *Document) LastUpdated() string {
	return d.lastUpdated
}

func (d *Document) Contact() Contact {
	return d.contact
}

// Sections returns a copy of the clauses in display order.
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}

func (d *Document) Len() int {
	return len(d.sections)
}

// ContactOrdinal is the number shown on the contact block, one past the
// last clause.
func (d *Document) ContactOrdinal() int {
	return d.Len() + 1
}

func (d *Document) ContactHeading() string {
	return fmt.Sprintf("%d. %s", d.ContactOrdinal(), d.contact.Title)
}

func MailtoHref() string {
	return "mailto:" + ContactEmail
}
