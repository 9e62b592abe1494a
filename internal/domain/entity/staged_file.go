package entity

// StagedFile is an uploaded file persisted to a temporary staging area.
// It lives for the duration of one request and is discarded on every
// exit path once a blob store has taken a copy.
type StagedFile struct {
	Path         string
	OriginalName string
	Size         int64
	MIME         string
}
