package ports

// Subscription is a live event registration. Release detaches it; calling
// Release more than once is a no-op.
type Subscription interface {
	Release()
}

// Host is the runtime surface the statusline controller plugs into.
type Host interface {
	// OnBranchChange registers a callback fired when the checked-out branch
	// changes. The returned subscription must be released on disposal.
	OnBranchChange(fn func()) Subscription

	// RequestRedraw asks the host to call Render again soon.
	RequestRedraw()
}
