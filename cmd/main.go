package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"svi/internal/buffer"
	"svi/internal/config"
	"svi/internal/editor"
	sshclient "svi/internal/ssh"
	"svi/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options are the parsed command line.
type options struct {
	configPath string
	file       string
}

var errUsage = errors.New("usage: svi [-config PATH] FILE")

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("svi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		fmt.Fprintln(stderr, "  FILE is a local path or scp://[user@]host[:port]/path")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the settings file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errUsage
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

// resolveTarget fills in the host, port, user and identity file of t from a
// matching ~/.ssh/config alias and the usual defaults.
func resolveTarget(t sshclient.Target, hosts []config.SSHHost, localUser string) sshclient.Target {
	if match := config.MatchSSHHost(hosts, t.Host); match != nil {
		log.Printf("[main] matched SSH config host %q for %s", match.Alias, t.Host)
		t.Host = match.DisplayHost()
		if t.Port == "" {
			t.Port = match.Port
		}
		if t.User == "" {
			t.User = match.User
		}
		if t.KeyPath == "" {
			t.KeyPath = match.IdentityFile
		}
	}
	if t.Port == "" {
		t.Port = "22"
	}
	if t.User == "" {
		t.User = localUser
	}
	return t
}

// session is an opened document plus whatever has to be closed after the
// editor exits.
type session struct {
	buf    *buffer.Buffer
	client *sshclient.Client
}

func (s *session) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// prompter asks the user questions on the controlling terminal before the
// TUI takes over the screen.
type prompter struct {
	in  io.Reader
	out io.Writer
	// readPassword reads a line without echo. Nil when stdin is not a
	// terminal, in which case password auth is not offered.
	readPassword func() ([]byte, error)
}

func terminalPrompter() prompter {
	p := prompter{in: os.Stdin, out: os.Stderr}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() ([]byte, error) { return term.ReadPassword(fd) }
	}
	return p
}

func (p prompter) password(question string) (string, error) {
	fmt.Fprint(p.out, question)
	pw, err := p.readPassword()
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// confirmHostKey shows the fingerprint of an unknown host key and accepts it
// only on an explicit yes.
func (p prompter) confirmHostKey(hostname string, key ssh.PublicKey) bool {
	fmt.Fprintf(p.out, "The authenticity of host '%s' can't be established.\n", hostname)
	fmt.Fprintf(p.out, "%s key fingerprint is %s.\n", key.Type(), fingerprintSHA256(key))
	fmt.Fprint(p.out, "Are you sure you want to continue connecting (yes/no)? ")

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func fingerprintSHA256(key ssh.PublicKey) string {
	return ssh.FingerprintSHA256(key)
}

// openSession loads arg from the local filesystem or, for scp:// URLs, from
// the remote host after connecting.
func openSession(arg string, p prompter) (*session, error) {
	if !sshclient.IsRemote(arg) {
		buf, err := buffer.Open(arg)
		if err != nil {
			return nil, err
		}
		return &session{buf: buf}, nil
	}

	target, err := sshclient.ParseTarget(arg)
	if err != nil {
		return nil, err
	}
	target = resolveTarget(target, config.LoadSSHConfig(), os.Getenv("USER"))

	var prompt func(string) (string, error)
	if p.readPassword != nil {
		prompt = p.password
	}
	client, err := sshclient.New(
		target.Host,
		target.Port,
		target.User,
		sshclient.AuthMethods(target.KeyPath, prompt),
		sshclient.HostKeyCallback(sshclient.DefaultKnownHostsPath(), p.confirmHostKey),
	)
	if err != nil {
		return nil, err
	}

	buf, err := buffer.Load(sshclient.NewRemoteFile(client, target))
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &session{buf: buf, client: client}, nil
}

// recentKey is the name a file is remembered under: the absolute path for
// local files, the scp:// URL for remote ones.
func recentKey(name string) string {
	if sshclient.IsRemote(name) {
		return name
	}
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}

// restoreCursor puts the cursor back where it was when the file was last
// closed.
func restoreCursor(ed *editor.Editor, cfg *config.Config) {
	if rf, ok := cfg.Recent(recentKey(ed.Document().Name())); ok {
		ed.SetCursor(editor.Position{Row: rf.Row, Col: rf.Col})
	}
}

func recordCursor(ed *editor.Editor, cfg *config.Config) {
	c := ed.Cursor()
	cfg.AddRecent(config.RecentFile{Path: recentKey(ed.Document().Name()), Row: c.Row, Col: c.Col})
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadFrom(path)
	if err != nil || cfg == nil {
		log.Printf("[main] config %s: %v, using defaults", path, err)
		return config.Default()
	}
	return cfg
}

// logPath returns the path for the debug log file.
// When running from the project directory (go run / ./bin/svi), logs go
// to .logs/debug.log.  When installed (e.g. /usr/local/bin), logs go to
// ~/.local/state/svi/debug.log following XDG conventions.
func logPath() string {
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		cwd, _ := os.Getwd()
		if strings.HasPrefix(exeDir, cwd) || strings.Contains(exeDir, "go-build") {
			dir := filepath.Join(cwd, ".logs")
			_ = os.MkdirAll(dir, 0o755)
			return filepath.Join(dir, "debug.log")
		}
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, _ := os.UserHomeDir()
		stateDir = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateDir, "svi")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "debug.log")
}

func run(args []string) int {
	opts, err := parseArgs(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	f, err := tea.LogToFile(logPath(), "debug")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open debug log:", err)
		return exitError
	}
	defer func() { _ = f.Close() }()
	log.Printf("=== svi starting (log: %s) ===", logPath())

	cfg := loadConfig(opts.configPath)

	sess, err := openSession(opts.file, terminalPrompter())
	if err != nil {
		log.Printf("[main] open %s: %v", opts.file, err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Printf("[main] close session: %v", err)
		}
	}()

	ed := editor.New(sess.buf)
	restoreCursor(ed, cfg)

	model := ui.NewModel(ed, ui.Options{LineNumbers: cfg.LineNumbers, TabWidth: cfg.TabWidth})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}

	recordCursor(ed, cfg)
	if err := config.SaveTo(opts.configPath, cfg); err != nil {
		log.Printf("[main] save config: %v", err)
	}
	log.Printf("=== svi exiting ===")
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:]))
}
