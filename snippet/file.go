package snippet

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Filesystem is the collaborator File delegates disk operations to.
// The default implementation calls through to the os package; tests
// inject a mock to capture writes or simulate failures.
type Filesystem interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Compile-time check that the OS-backed default satisfies Filesystem.
var _ Filesystem = osFilesystem{}

type osFilesystem struct{}

func (osFilesystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFilesystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// File is a keyed collection of snippets that serializes to one
// .code-snippets document. Names are unique; inserting a snippet under
// an existing name overwrites the previous entry (last writer wins).
// Insertion order is irrelevant and not preserved.
//
// File is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type File struct {
	snippets map[string]Snippet
	fsys     Filesystem
	logger   *slog.Logger
}

// NewFile creates a File holding the given snippets, backed by the OS
// filesystem and a discarded logger.
func NewFile(snippets ...Snippet) *File {
	f := &File{
		snippets: make(map[string]Snippet, len(snippets)),
		fsys:     osFilesystem{},
		logger:   slog.New(slog.DiscardHandler),
	}
	f.Add(snippets...)
	return f
}

// NewFileFromBuilders builds every builder and collects the results.
// It returns the first build failure instead of aborting the process:
// an invalid builder at this entry point is an ordinary error, not a
// programmer contract violation.
func NewFileFromBuilders(builders ...Builder) (*File, error) {
	f := NewFile()
	if err := f.AddBuilders(builders...); err != nil {
		return nil, err
	}
	return f, nil
}

// SetFilesystem replaces the filesystem collaborator used by Save.
func (f *File) SetFilesystem(fsys Filesystem) {
	f.fsys = fsys
}

// SetLogger replaces the logger. The default discards everything, so a
// caller that wants save events must inject its own.
func (f *File) SetLogger(logger *slog.Logger) {
	f.logger = logger
}

// Add inserts snippets, overwriting any existing entries with the same
// name.
func (f *File) Add(snippets ...Snippet) {
	for _, s := range snippets {
		f.snippets[s.Name] = s
	}
}

// AddBuilders builds and inserts each builder in order, stopping at
// the first one that fails validation. Builders before the failing one
// are already inserted when an error is returned.
func (f *File) AddBuilders(builders ...Builder) error {
	for _, b := range builders {
		s, err := b.Build()
		if err != nil {
			return err
		}
		f.Add(s)
	}
	return nil
}

// Len reports the number of snippets held.
func (f *File) Len() int {
	return len(f.snippets)
}

// Get returns the snippet stored under name.
func (f *File) Get(name string) (Snippet, bool) {
	s, ok := f.snippets[name]
	return s, ok
}

// Names returns the set of snippet names, in no particular order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.snippets))
	for name := range f.snippets {
		names = append(names, name)
	}
	return names
}

// ToJSON serializes the collection as one JSON object mapping each
// snippet name to its value object. encoding/json sorts map keys, so
// output is deterministic, but key order is not part of the contract.
func (f *File) ToJSON() (string, error) {
	data, err := json.MarshalIndent(f.snippets, "", "    ")
	if err != nil {
		return "", serializationFailed(err)
	}
	return string(data), nil
}

// Save writes the serialized collection to path, creating missing
// parent directories and overwriting any existing file. Directory and
// write failures wrap ErrFilesystem around the underlying OS error; a
// serialization failure propagates as-is. The write is plain (no
// temp-file rename), so a failed write gives whatever partial state
// the filesystem itself left behind.
func (f *File) Save(path string) error {
	dir := filepath.Dir(path)
	if err := f.fsys.MkdirAll(dir, 0755); err != nil {
		return filesystemFailed("creating directory", dir, err)
	}

	doc, err := f.ToJSON()
	if err != nil {
		return err
	}

	if err := f.fsys.WriteFile(path, []byte(doc), 0644); err != nil {
		return filesystemFailed("writing", path, err)
	}

	f.logger.Info("snippets file saved",
		slog.String("path", path),
		slog.Int("snippets", len(f.snippets)),
	)
	return nil
}
