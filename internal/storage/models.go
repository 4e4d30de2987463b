package storage

// Entry is one key/value pair written by SetMany. Values are opaque to the
// store; the engine writes JSON.
type Entry struct {
	Key   string
	Value []byte
}
