// Package snippet builds VS Code snippet definitions and writes them
// out as .code-snippets JSON files.
//
// A Snippet is assembled through a fluent Builder, collected into a
// File keyed by snippet name, and saved to disk:
//
//	s, err := snippet.NewBuilder().
//		SetPrefix("fn").
//		SetBody(
//			"fn ${1:name}(${2:args}) {",
//			"    ${0}",
//			"}",
//		).
//		SetDescription("Create a new function").
//		SetScope("rust").
//		Build()
//	if err != nil {
//		return err
//	}
//
//	file := snippet.NewFile(s)
//	if err := file.Save("snippets/rust.code-snippets"); err != nil {
//		return err
//	}
//
// Tabstop and placeholder markup inside body lines ($1, ${1:default},
// ${1|a,b,c|}) is opaque payload — this package never interprets it,
// only the consuming editor does.
package snippet

import "encoding/json"

// Snippet is one finalized snippet definition. It is immutable: all
// mutation happens on a Builder before Build.
//
// The struct tags describe the VS Code snippet file schema. The Name
// is the enclosing JSON property, never part of the value object, so
// it carries `json:"-"`. Optional fields are omitted entirely when
// absent — the editor treats missing and null differently in some
// versions, so omitempty (and pointers for the non-string options) is
// load-bearing here, not cosmetic.
type Snippet struct {
	Name        string   `json:"-"`
	Prefix      string   `json:"prefix"`
	Body        []string `json:"body"`
	Description string   `json:"description,omitempty"`
	Scope       string   `json:"scope,omitempty"`

	// Pointers so an explicit false / 0 still serializes.
	IsFileTemplate *bool `json:"isFileTemplate,omitempty"`
	Priority       *uint `json:"priority,omitempty"`
}

// New creates a snippet with the required fields and an auto-generated
// name. It returns an error when prefix is empty or no body lines are
// given.
func New(prefix string, body ...string) (Snippet, error) {
	return NewBuilder().
		SetPrefix(prefix).
		SetBody(body...).
		Build()
}

// ToJSON renders the snippet's value object (everything except the
// name) as indented JSON.
func (s Snippet) ToJSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return "", serializationFailed(err)
	}
	return string(data), nil
}
