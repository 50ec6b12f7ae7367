package event

// Recorder subscribes to a Bus and keeps everything it hears, in order.
// Tests use it to assert on message sequences and property notifications.
type Recorder struct {
	Events []Event
}

// NewRecorder attaches a fresh Recorder to the bus.
func NewRecorder(bus *Bus) *Recorder {
	r := &Recorder{}
	bus.Subscribe(TypePropertyChanged, r.record)
	bus.Subscribe(TypeMessage, r.record)
	return r
}

func (r *Recorder) record(e Event) {
	r.Events = append(r.Events, e)
}

// Messages returns the text of every recorded narrative message, in order.
func (r *Recorder) Messages() []string {
	var out []string
	for _, e := range r.Events {
		if m, ok := e.Payload.(Message); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

// Properties returns the names of every recorded property change, in order.
func (r *Recorder) Properties() []string {
	var out []string
	for _, e := range r.Events {
		if p, ok := e.Payload.(PropertyChanged); ok {
			out = append(out, p.Name)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.Events = nil
}
