package patricia

import "fmt"

// Sentinel errors for the failure kinds a Trie operation can report.
// Callers compare against these with errors.Is; every returned error wraps
// one of them with call-site context via fmt.Errorf("...: %w", ...).
var (
	// ErrNullKey is returned by Put and Remap when given a nil key. Get,
	// ContainsKey, and Remove do not check for nil keys.
	ErrNullKey = fmt.Errorf("patricia: null key")

	// ErrWrongKeyType is returned by the Any-suffixed accessors when the
	// supplied key does not have the trie's runtime key shape.
	ErrWrongKeyType = fmt.Errorf("patricia: wrong key type")

	// ErrOutOfRange is returned by a range view's Put, or by SubMap/HeadMap/
	// TailMap construction, when a key falls outside the view's bounds.
	ErrOutOfRange = fmt.Errorf("patricia: key out of range")

	// ErrConcurrentModification is returned by an iterator when it detects
	// that the trie was structurally changed since the iterator was created
	// (or since its own last self-driven mutation).
	ErrConcurrentModification = fmt.Errorf("patricia: concurrent modification")

	// ErrNoSuchElement is returned by FirstKey/LastKey on an empty view, and
	// by an iterator's Next once it is exhausted.
	ErrNoSuchElement = fmt.Errorf("patricia: no such element")

	// ErrIllegalArgument is returned when a prefix offset/length is not on
	// the key analyzer's element boundary, or an iterator's Remove is called
	// with no current element.
	ErrIllegalArgument = fmt.Errorf("patricia: illegal argument")

	// ErrUnsupported is returned when a Cursor returns Remove from inside
	// Select (Remove is legal only inside Traverse).
	ErrUnsupported = fmt.Errorf("patricia: unsupported operation")
)

// InvariantError reports a violation of the node-graph invariants (bitIndex
// strictly increasing along downlinks, every link but root.right populated).
// It is never returned to callers of well-formed operations; encountering
// one means the trie's internal structure is corrupt, which cannot happen
// through the public API. Operations that detect one panic with it, matching
// the Java original's IllegalStateException/IndexOutOfBoundsException for
// its "we should have exited above" branches.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("patricia: invariant violation in %s: %s", e.Op, e.Msg)
}
