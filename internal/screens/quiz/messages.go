package quiz

// journalWrittenMsg reports the outcome of appending an answer to the
// journal.
type journalWrittenMsg struct {
	Page int
	Err  error
}
