package snippet

import "fmt"

// Template constructors for common snippet shapes. Each returns a
// Builder, not a finished Snippet, so callers can keep chaining
// (description, scope, priority) before Build.

// Text creates a one-line text snippet.
func Text(prefix, text string) Builder {
	return NewBuilder().
		SetPrefix(prefix).
		SetBody(text)
}

// TodoComment creates a marker-comment snippet like "// TODO: ...".
// An empty comment token defaults to "//".
func TodoComment(prefix, marker, comment string) Builder {
	if comment == "" {
		comment = "//"
	}
	return NewBuilder().
		SetPrefix(prefix).
		SetBody(fmt.Sprintf("%s %s: ${1:...}", comment, marker))
}

// FnAlias creates a one-line function-call alias.
func FnAlias(prefix, fnName string) Builder {
	return NewBuilder().
		SetPrefix(prefix).
		SetBody(fnName + "()")
}

// Go-scoped variants of the generic templates.

// GoText creates a one-line text snippet scoped to Go files.
func GoText(prefix, text string) Builder {
	return Text(prefix, text).SetScope("go")
}

// GoTodoComment creates a Go-scoped marker comment.
func GoTodoComment(prefix, marker string) Builder {
	return TodoComment(prefix, marker, "//").SetScope("go")
}

// GoFnAlias creates a Go-scoped function-call alias.
func GoFnAlias(prefix, fnName string) Builder {
	return FnAlias(prefix, fnName).SetScope("go")
}

// GoErrCheck creates the standard Go error-check block.
func GoErrCheck(prefix string) Builder {
	return NewBuilder().
		SetPrefix(prefix).
		SetBody(
			"if err != nil {",
			"    ${1:return err}",
			"}",
		).
		SetScope("go")
}
