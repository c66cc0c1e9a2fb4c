package snippet

import "slices"

// Builder is a mutable staging area for one Snippet.
//
// It has value semantics: every mutator returns a new Builder, so call
// chains compose and a branched-off builder never sees later edits to
// its parent. Body mutators clone the line slice before touching it to
// keep that guarantee — two builders never share backing storage.
//
//	base := snippet.NewBuilder().SetPrefix("log").SetScope("go")
//	info := base.AddLine(`slog.Info("${1:msg}")`)
//	warn := base.AddLine(`slog.Warn("${1:msg}")`)
//
// Defaults: Name is auto-generated (see GenerateName), prefix and body
// are empty, all optional fields absent. Validation happens only in
// Validate and Build, never in the setters.
type Builder struct {
	name           string
	prefix         string
	body           []string
	description    string
	scope          string
	isFileTemplate *bool
	priority       *uint
}

// NewBuilder creates a Builder whose name comes from GenerateName.
func NewBuilder() Builder {
	return NewBuilderWith(GenerateName)
}

// NewBuilderWith creates a Builder whose default name comes from gen.
// Tests substitute a deterministic NameFunc here instead of depending
// on the clock and a random source.
func NewBuilderWith(gen NameFunc) Builder {
	return Builder{name: gen()}
}

// SetName overwrites the auto-generated snippet name.
func (b Builder) SetName(name string) Builder {
	b.name = name
	return b
}

// SetPrefix sets the trigger text.
func (b Builder) SetPrefix(prefix string) Builder {
	b.prefix = prefix
	return b
}

// SetBody replaces the whole body with the given lines.
func (b Builder) SetBody(lines ...string) Builder {
	b.body = slices.Clone(lines)
	return b
}

// AddLine appends one line to the body.
func (b Builder) AddLine(line string) Builder {
	b.body = append(slices.Clone(b.body), line)
	return b
}

// AddLines appends the given lines to the body, in order.
func (b Builder) AddLines(lines ...string) Builder {
	b.body = append(slices.Clone(b.body), lines...)
	return b
}

// SetLine replaces the line at index n. It fails with
// ErrIndexOutOfBounds when n does not address an existing line.
func (b Builder) SetLine(n int, line string) (Builder, error) {
	if n < 0 || n >= len(b.body) {
		return b, indexOutOfBounds(n)
	}
	b.body = slices.Clone(b.body)
	b.body[n] = line
	return b, nil
}

// MapBody replaces the body with fn(body). The callback receives a
// copy, so it may append, filter, or reorder freely.
func (b Builder) MapBody(fn func(lines []string) []string) Builder {
	b.body = fn(slices.Clone(b.body))
	return b
}

// MapLine replaces the line at index n with fn(line). Same bounds rule
// as SetLine.
func (b Builder) MapLine(n int, fn func(line string) string) (Builder, error) {
	if n < 0 || n >= len(b.body) {
		return b, indexOutOfBounds(n)
	}
	b.body = slices.Clone(b.body)
	b.body[n] = fn(b.body[n])
	return b, nil
}

// SetDescription sets the snippet description.
func (b Builder) SetDescription(description string) Builder {
	b.description = description
	return b
}

// SetScope sets the language scope, e.g. "go" or "rust".
func (b Builder) SetScope(scope string) Builder {
	b.scope = scope
	return b
}

// SetIsFileTemplate marks whether the snippet is a file template.
func (b Builder) SetIsFileTemplate(isTemplate bool) Builder {
	b.isFileTemplate = &isTemplate
	return b
}

// SetPriority sets the snippet's position weight in the editor's
// suggestion list.
func (b Builder) SetPriority(priority uint) Builder {
	b.priority = &priority
	return b
}

// Validate checks the builder state without building. Checks run in
// order name, prefix, body; the first failure is returned.
func (b Builder) Validate() error {
	if b.name == "" {
		return nameRequired()
	}
	if b.prefix == "" {
		return prefixRequired()
	}
	if len(b.body) == 0 {
		return bodyEmpty()
	}
	return nil
}

// Build validates and produces the immutable Snippet. The builder
// stays mutable right up to this point, so Build always re-validates.
func (b Builder) Build() (Snippet, error) {
	if err := b.Validate(); err != nil {
		return Snippet{}, err
	}

	return Snippet{
		Name:           b.name,
		Prefix:         b.prefix,
		Body:           slices.Clone(b.body),
		Description:    b.description,
		Scope:          b.scope,
		IsFileTemplate: b.isFileTemplate,
		Priority:       b.priority,
	}, nil
}
