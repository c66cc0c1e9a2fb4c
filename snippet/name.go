package snippet

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/xid"
)

// NameFunc produces the default name for a new Builder. The builder
// depends on it as an injectable capability so tests can use a
// deterministic generator.
type NameFunc func() string

// GenerateName returns a practically-unique snippet name of the form
// "snippet_<millisecond-timestamp>_<6 lowercase letters>". Two
// builders created at distinct instants differ in the timestamp; at
// the same instant the random suffix gives a 1-in-26^6 collision
// chance.
func GenerateName() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = byte('a' + rand.IntN(26))
	}
	return fmt.Sprintf("snippet_%d_%s", time.Now().UnixMilli(), suffix)
}

// XIDName is an alternative NameFunc backed by xid: 20 URL-safe chars,
// sortable by creation time, unique without relying on a random draw
// within the same millisecond. Use it when generating large batches:
//
//	b := snippet.NewBuilderWith(snippet.XIDName)
func XIDName() string {
	return "snippet_" + xid.New().String()
}
