package models

// NoticeLevel controls how a [Notice] is presented.
type NoticeLevel int

const (
	// NoticeNone means the intent produced nothing to show.
	NoticeNone NoticeLevel = iota
	// NoticeInfo is a transient status line.
	NoticeInfo
	// NoticeInline is an inline status string shown next to the affected
	// view, used for document operation failures.
	NoticeInline
	// NoticeAlert is a blocking alert the user has to dismiss.
	NoticeAlert
)

// Notice is a user-visible outcome of an intent.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// IsZero reports whether the notice carries nothing to display.
func (n Notice) IsZero() bool {
	return n.Level == NoticeNone && n.Text == ""
}
