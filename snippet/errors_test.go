package snippet

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "nameRequired wraps ErrNameRequired",
			err:       nameRequired(),
			target:    ErrNameRequired,
			wantMatch: true,
		},
		{
			name:      "prefixRequired wraps ErrPrefixRequired",
			err:       prefixRequired(),
			target:    ErrPrefixRequired,
			wantMatch: true,
		},
		{
			name:      "bodyEmpty wraps ErrBodyEmpty",
			err:       bodyEmpty(),
			target:    ErrBodyEmpty,
			wantMatch: true,
		},
		{
			name:      "indexOutOfBounds wraps ErrIndexOutOfBounds",
			err:       indexOutOfBounds(3),
			target:    ErrIndexOutOfBounds,
			wantMatch: true,
		},
		{
			name:      "prefixRequired does NOT match ErrBodyEmpty",
			err:       prefixRequired(),
			target:    ErrBodyEmpty,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *Error
		wantMessage string
	}{
		{
			name:        "name required",
			err:         nameRequired(),
			wantMessage: "snippet name is required",
		},
		{
			name:        "prefix required",
			err:         prefixRequired(),
			wantMessage: "snippet prefix is required",
		},
		{
			name:        "body empty",
			err:         bodyEmpty(),
			wantMessage: "snippet body cannot be empty",
		},
		{
			name:        "index out of bounds includes the index",
			err:         indexOutOfBounds(7),
			wantMessage: "line index 7 out of bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestIndexOutOfBoundsField(t *testing.T) {
	err := indexOutOfBounds(42)
	if err.Index != 42 {
		t.Errorf("Index = %d, want 42", err.Index)
	}
}

func TestFilesystemFailedKeepsCause(t *testing.T) {
	// The wrapped error must match both the taxonomy sentinel and the
	// underlying OS error.
	cause := fs.ErrPermission
	err := filesystemFailed("writing", "/etc/snippets.json", cause)

	if !errors.Is(err, ErrFilesystem) {
		t.Error("expected errors.Is(err, ErrFilesystem)")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected errors.Is(err, fs.ErrPermission)")
	}
}

func TestSerializationFailedKeepsCause(t *testing.T) {
	cause := errors.New("unsupported value")
	err := serializationFailed(cause)

	if !errors.Is(err, ErrSerialization) {
		t.Error("expected errors.Is(err, ErrSerialization)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is(err, cause)")
	}
}
