package authcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultTimeout bounds how long the run waits for the pasted code.
const DefaultTimeout = 360 * time.Second

// WaitForEnter blocks until the user presses Enter.
func WaitForEnter(r io.Reader) {
	_, _ = bufio.NewReader(r).ReadString('\n')
}

// Read waits up to timeout for one line and normalizes it into a bare
// authorization code. Empty input and timeouts are errors.
func Read(r io.Reader, timeout time.Duration) (string, error) {
	type line struct {
		text string
		err  error
	}
	ch := make(chan line, 1)
	go func() {
		text, err := bufio.NewReader(r).ReadString('\n')
		ch <- line{text, err}
	}()
	select {
	case entry := <-ch:
		if entry.err != nil && !errors.Is(entry.err, io.EOF) {
			return "", entry.err
		}
		code := Normalize(entry.text)
		if code == "" {
			return "", errors.New("no authorization code entered")
		}
		return code, nil
	case <-time.After(timeout):
		return "", fmt.Errorf("timed out after %v waiting for the authorization code", timeout)
	}
}

// Normalize accepts either a bare code or a pasted redirect URL. Anything
// through the last "code=" marker is dropped, then anything from "&scope" on.
func Normalize(input string) string {
	code := strings.TrimSpace(input)
	if i := strings.LastIndex(code, "code="); i != -1 {
		code = code[i+len("code="):]
	}
	if i := strings.Index(code, "&scope"); i != -1 {
		code = code[:i]
	}
	return strings.TrimSpace(code)
}
