//go:build e2e && unix

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20      // 1 MiB of scrollback
var binPath = "inboxtags_e2e" // set by TestMain

// Key sequences as the terminal sends them
const (
	KeyEnter     = "\r"
	KeyCtrlC     = "\x03"
	KeyCtrlS     = "\x13"
	KeyEsc       = "\x1b"
	KeyBackspace = "\x7f"
	KeyDown      = "\x1b[B"
	KeyUp        = "\x1b[A"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the binary in a pseudo terminal
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	done      chan error

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
	cond *sync.Cond
}

// NewTUITest creates a framework with its own scratch workspace
func NewTUITest(t *testing.T) *TUITestFramework {
	tf := &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
	tf.cond = sync.NewCond(&tf.mu)
	return tf
}

// WriteFile creates a file in the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) string {
	tf.t.Helper()
	p := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		tf.t.Fatalf("failed to write %s: %v", name, err)
	}
	return p
}

// StartApp launches inboxtags with args in a PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = tf.workspace

	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+tf.workspace,            // isolate $HOME
		"XDG_CONFIG_HOME="+tf.workspace, // no user config
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.done = make(chan error, 1)
	go func() { tf.done <- tf.cmd.Wait() }()

	tf.startReader()
	return nil
}

// startReader starts the continuous reader goroutine
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.cond.Broadcast()
				tf.mu.Unlock()
			}
			if err != nil {
				tf.mu.Lock()
				tf.cond.Broadcast()
				tf.mu.Unlock()
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time, like a person typing
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Click sends an SGR left-button press and release at the 0-based cell
func (tf *TUITestFramework) Click(x, y int) error {
	tf.t.Helper()
	press := fmt.Sprintf("\x1b[<0;%d;%dM", x+1, y+1)
	release := fmt.Sprintf("\x1b[<0;%d;%dm", x+1, y+1)
	return tf.SendKeys(press + release)
}

// Driver DSL helpers for readable test scripts

// Ready waits for the title and input prompt
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContainsPlain("To:", 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain checks if the normalized output contains text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to exit and returns its exit code, or -1
// on timeout
func (tf *TUITestFramework) WaitExit(timeout time.Duration) int {
	tf.t.Helper()
	select {
	case err := <-tf.done:
		tf.cmd = nil
		if err == nil {
			return 0
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return -1
	case <-time.After(timeout):
		return -1
	}
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (tf *TUITestFramework) Snapshot() string {
	tf.t.Helper()
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.snapshot()
}

// snapshot assumes the mutex is held
func (tf *TUITestFramework) snapshot() string {
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// Reset forgets captured output so later assertions only see new frames
func (tf *TUITestFramework) Reset() {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.head = 0
	tf.full = false
}

// SnapshotPlain returns the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	tf.t.Helper()
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail logs the last n bytes of normalized output when the test failed
func (tf *TUITestFramework) DumpTailOnFail(n int) {
	if !tf.t.Failed() {
		return
	}
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	tf.t.Logf("--- output tail ---\n%s", s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	tf.DumpTailOnFail(4096)
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		<-tf.done
		tf.cmd = nil
	}
}
