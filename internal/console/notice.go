package console

type Tone int

const (
	ToneSuccess Tone = iota
	ToneError
)

// Notice is the single-slot transient message. Last write wins; there is no
// queue, and the next operation simply overwrites it.
type Notice struct {
	Tone    Tone
	Message string
}
