package convert

// Event - a status message from a running conversion. Events arrive in
// emission order; the stream ends with exactly one Success or Failure.
type Event interface {
	isEvent()
}

// Progress - percent complete, emitted about every half percent.
// Advisory only; consumers may coalesce or drop ticks.
type Progress struct {
	Percent float64
}

// Warning - a non-fatal notice, conversion continues. Emitted at most
// once per run, when the style cache first saturates.
type Warning struct {
	Message string
}

// Success - terminal event of a completed conversion.
type Success struct {
	Path       string
	StyleCount int
}

// Failure - terminal event of an aborted conversion. Nothing has been
// written to disk.
type Failure struct {
	Err error
}

func (Progress) isEvent() {}
func (Warning) isEvent()  {}
func (Success) isEvent()  {}
func (Failure) isEvent()  {}
