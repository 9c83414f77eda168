package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// streamChunkMsg carries one streamed fragment of the in-flight reply
	streamChunkMsg struct {
		stream *stream
		text   string
	}
	// streamDoneMsg is sent once SendMessage returns
	streamDoneMsg struct {
		stream *stream
		reply  string
		err    error
	}
)

// stream connects one in-flight request to the update loop.
// Fragments are delivered in order over chunks, which is closed when the
// request returns. Messages from a replaced stream are ignored by identity.
type stream struct {
	ctx    context.Context
	cancel context.CancelFunc
	chunks chan string
}

func newStream() *stream {
	ctx, cancel := context.WithCancel(context.Background())
	return &stream{
		ctx:    ctx,
		cancel: cancel,
		chunks: make(chan string, 64),
	}
}

// send forwards a fragment, giving up once the request is cancelled
func (s *stream) send(text string) {
	select {
	case s.chunks <- text:
	case <-s.ctx.Done():
	}
}

// run returns a command that performs the request and reports its outcome
func (s *stream) run(session ChatSessionInterface, prompt string) tea.Cmd {
	return func() tea.Msg {
		defer close(s.chunks)
		reply, err := session.SendMessage(s.ctx, prompt, s.send)
		return streamDoneMsg{stream: s, reply: reply, err: err}
	}
}

// wait returns a command that delivers the next fragment
func (s *stream) wait() tea.Cmd {
	return func() tea.Msg {
		text, ok := <-s.chunks
		if !ok {
			return nil
		}
		return streamChunkMsg{stream: s, text: text}
	}
}
