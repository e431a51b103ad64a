// Package console implements the interactive menu of dynmst: it reads menu
// choices and integers from an input stream, forwards them to a core.Graph
// and prim_kruskal.Kruskal, and prints the results.
//
// Input is token based: values may be split across lines or packed on one.
// A malformed number discards the rest of its line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dynmst/core"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Menu choices.
const (
	ChoiceAddEdge    = 1
	ChoiceRemoveEdge = 2
	ChoiceShowMST    = 3
	ChoiceExit       = 4
)

const menuText = "\nMenu:\n" +
	"1. Add Edge\n" +
	"2. Remove Edge\n" +
	"3. Display MST\n" +
	"4. Exit\n" +
	"Enter your choice: "

// errInvalidInput marks a token that is not an integer.
var errInvalidInput = errors.New("invalid input")

// Session binds a graph to an output stream.
type Session struct {
	graph  *core.Graph
	out    io.Writer
	logger *zap.Logger
}

// NewSession creates a session over g writing to out. A nil logger is replaced
// with zap.NewNop().
func NewSession(g *core.Graph, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{graph: g, out: out, logger: logger}
}

// Graph returns the session's graph.
func (s *Session) Graph() *core.Graph {
	return s.graph
}

// Run shows the menu and serves choices from in until the user exits, the
// input ends, or ctx is cancelled. End of input is not an error; cancellation
// returns ctx.Err() even while Run is waiting for input.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	tk := newTokenizer(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf("%s", menuText)

		choice, err := tk.nextInt(ctx, strconv.IntSize)
		switch {
		case err == io.EOF:
			s.logger.Debug("input closed, leaving menu")
			return nil
		case errors.Cause(err) == errInvalidInput:
			s.printf("Invalid input! Please try again.\n")
			tk.discardLine()
			continue
		case err != nil && err == ctx.Err():
			return err
		case err != nil:
			return errors.Trace(err)
		}

		switch choice {
		case ChoiceExit:
			s.printf("Exiting program. Goodbye!\n")
			return nil
		case ChoiceAddEdge:
			s.printf("Enter edge (u v weight): ")
			vals, stop, err := s.readInts(ctx, tk, addEdgeArgs)
			if stop {
				return err
			}
			if vals == nil {
				continue
			}
			s.AddEdge(int(vals[0]), int(vals[1]), vals[2])
		case ChoiceRemoveEdge:
			s.printf("Enter edge to remove (u v): ")
			vals, stop, err := s.readInts(ctx, tk, removeEdgeArgs)
			if stop {
				return err
			}
			if vals == nil {
				continue
			}
			s.RemoveEdge(int(vals[0]), int(vals[1]))
		case ChoiceShowMST:
			s.ShowMST()
		default:
			s.logger.Debug("invalid menu choice", zap.Int64("choice", choice))
			s.printf("Invalid choice! Please try again.\n")
		}
	}
}

// Bit sizes of command arguments: vertex ids must fit an int, weights an int64.
var (
	addEdgeArgs    = []int{strconv.IntSize, strconv.IntSize, 64}
	removeEdgeArgs = []int{strconv.IntSize, strconv.IntSize}
)

// readInts reads one integer per entry of bitSizes. stop reports that Run
// must return err; a nil vals with stop unset means the input was malformed,
// already reported, and its line dropped.
func (s *Session) readInts(ctx context.Context, tk *tokenizer, bitSizes []int) (vals []int64, stop bool, err error) {
	vals, err = tk.nextInts(ctx, bitSizes)
	switch {
	case err == nil:
		return vals, false, nil
	case err == io.EOF:
		s.logger.Debug("input closed mid-command")
		return nil, true, nil
	case errors.Cause(err) == errInvalidInput:
		s.printf("Invalid input! Please try again.\n")
		tk.discardLine()
		return nil, false, nil
	case err == ctx.Err():
		return nil, true, err
	default:
		return nil, true, errors.Trace(err)
	}
}

func (s *Session) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// maxLineBytes bounds a single input line; longer lines are reported as
// invalid input and skipped.
const maxLineBytes = 1 << 20

// scannedLine is one line handed from the reader goroutine to the tokenizer.
type scannedLine struct {
	text    string
	tooLong bool
	err     error
}

// tokenizer yields whitespace separated tokens, remembering the rest of the
// current line so that it can be dropped after bad input. Lines are read on
// a separate goroutine so a blocked read never hides cancellation; the
// goroutine exits once done is closed or the input ends.
type tokenizer struct {
	lines   <-chan scannedLine
	pending []string
}

func newTokenizer(r io.Reader, done <-chan struct{}) *tokenizer {
	lines := make(chan scannedLine)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, tooLong, err := readLine(br)
			select {
			case lines <- scannedLine{text: text, tooLong: tooLong, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return &tokenizer{lines: lines}
}

// readLine returns the next line including its terminator. Bytes past
// maxLineBytes drop the whole line and set tooLong. A final line without a
// newline is returned with a nil error; io.EOF follows on the next call.
func readLine(br *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) <= maxLineBytes {
			buf = append(buf, chunk...)
		} else {
			tooLong = true
			buf = nil
		}
		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && (len(buf) > 0 || tooLong):
			return string(buf), tooLong, nil
		case err != nil:
			return "", false, err
		}
		return string(buf), tooLong, nil
	}
}

func (t *tokenizer) next(ctx context.Context) (string, error) {
	for len(t.pending) == 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-t.lines:
			if !ok || line.err == io.EOF {
				return "", io.EOF
			}
			if line.err != nil {
				return "", errors.Trace(line.err)
			}
			if line.tooLong {
				return "", errors.Annotatef(errInvalidInput, "line longer than %d bytes", maxLineBytes)
			}
			t.pending = strings.Fields(line.text)
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// nextInt parses the next token as a signed integer of the given bit size.
func (t *tokenizer) nextInt(ctx context.Context, bitSize int) (int64, error) {
	tok, err := t.next(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, bitSize)
	if err != nil {
		return 0, errors.Annotatef(errInvalidInput, "token %q", tok)
	}
	return v, nil
}

// nextInts reads one integer per bit size; on failure it returns nil values.
func (t *tokenizer) nextInts(ctx context.Context, bitSizes []int) ([]int64, error) {
	vals := make([]int64, 0, len(bitSizes))
	for _, bitSize := range bitSizes {
		v, err := t.nextInt(ctx, bitSize)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (t *tokenizer) discardLine() {
	t.pending = nil
}
