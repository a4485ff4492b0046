package view

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is the one-slot toast carried over a redirect. The layout
// renders it once and the page script hides it after 3 seconds.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}
