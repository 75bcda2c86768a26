package ports

// Progress tracks completion of a fixed number of work items.
type Progress interface {
	Add(n int)
	Finish()
}

// ProgressFactory creates progress trackers.
type ProgressFactory interface {
	New(total int, description string) Progress
}
