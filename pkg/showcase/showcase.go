// Package showcase drives the three demonstrations: it reads a selection,
// resolves behavior objects through the variant registries, builds the
// sample tree and writes the results line by line.
package showcase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/patterns/pkg/config"
	"github.com/arthur-debert/patterns/pkg/encoding"
	"github.com/arthur-debert/patterns/pkg/logging"
	"github.com/arthur-debert/patterns/pkg/style"
	"github.com/arthur-debert/patterns/pkg/tree"
	"github.com/arthur-debert/patterns/pkg/users"
	"github.com/rs/zerolog"
)

// Menu selections
const (
	SelectUsers    = "1"
	SelectTree     = "2"
	SelectEncoding = "3"
)

// Showcase writes demonstration output to out. Prompt text and the menu go
// to a separate writer so out only ever carries results.
type Showcase struct {
	cfg     *config.Config
	out     io.Writer
	prompt  io.Writer
	headers bool
	logger  zerolog.Logger
}

// Option configures a Showcase
type Option func(*Showcase)

// WithPrompt sends the menu and prompt to w
func WithPrompt(w io.Writer) Option {
	return func(s *Showcase) { s.prompt = w }
}

// WithHeaders prints a section header before each demonstration
func WithHeaders(enabled bool) Option {
	return func(s *Showcase) { s.headers = enabled }
}

// New creates a Showcase. A nil cfg means the embedded defaults.
func New(cfg *config.Config, out io.Writer, opts ...Option) *Showcase {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Showcase{
		cfg:    cfg,
		out:    out,
		prompt: io.Discard,
		logger: logging.GetLogger("showcase"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadSelection reads one line and trims it. End of input without any data
// yields an empty selection.
func ReadSelection(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Menu writes the menu and the prompt to the prompt writer
func (s *Showcase) Menu() error {
	if _, err := io.WriteString(s.prompt, style.RenderMenu(s.cfg.Messages.Menu)); err != nil {
		return err
	}
	_, err := io.WriteString(s.prompt, style.RenderPrompt(s.cfg.Messages.Prompt))
	return err
}

// Interact shows the menu, reads one selection from in and runs it
func (s *Showcase) Interact(in io.Reader) error {
	if err := s.Menu(); err != nil {
		return err
	}
	selection, err := ReadSelection(in)
	if err != nil {
		return err
	}
	return s.Run(selection)
}

// Run dispatches a selection. Unknown selections print the invalid choice
// message and are not errors.
func (s *Showcase) Run(selection string) error {
	s.logger.Debug().Str("selection", selection).Msg("Dispatching selection")

	switch selection {
	case SelectUsers:
		return s.Users()
	case SelectTree:
		return s.Tree()
	case SelectEncoding:
		return s.Encoding()
	default:
		s.logger.Info().Str("selection", selection).Msg("Invalid selection")
		return s.println(s.cfg.Messages.InvalidChoice)
	}
}

// All runs every demonstration in order with headers, separated by blank
// lines
func (s *Showcase) All() error {
	headers := s.headers
	s.headers = true
	defer func() { s.headers = headers }()

	for i, run := range []func() error{s.Users, s.Tree, s.Encoding} {
		if i > 0 {
			if err := s.println(""); err != nil {
				return err
			}
		}
		if err := run(); err != nil {
			return err
		}
	}
	return nil
}

// Users creates every configured role and writes its description
func (s *Showcase) Users() error {
	return s.UsersFor(s.cfg.Users.Roles)
}

// UsersFor creates the given roles and writes their descriptions
func (s *Showcase) UsersFor(roles []string) error {
	done := logging.LogOperationStart(s.logger, "users")
	defer done()

	if err := s.header(s.cfg.Messages.Headers.Factory); err != nil {
		return err
	}

	created := make([]users.User, 0, len(roles))
	for _, role := range roles {
		u, err := users.Create(role)
		if err != nil {
			return err
		}
		created = append(created, u)
	}

	for _, u := range created {
		if err := s.println(u.Describe()); err != nil {
			return err
		}
	}
	return nil
}

// Tree builds the configured sample tree and writes its rendering
func (s *Showcase) Tree() error {
	root, err := s.cfg.SampleTree()
	if err != nil {
		return err
	}
	return s.TreeFor(root)
}

// TreeFor writes the rendering of root
func (s *Showcase) TreeFor(root tree.Component) error {
	done := logging.LogOperationStart(s.logger, "tree")
	defer done()

	if err := s.header(s.cfg.Messages.Headers.Composite); err != nil {
		return err
	}

	s.logger.Debug().
		Int("components", tree.Count(root)).
		Int("depth", tree.Depth(root)).
		Msg("Rendering tree")

	return tree.Export(s.out, root, tree.FormatText, s.cfg.Labels())
}

// Encoding writes one transformed line per configured sample
func (s *Showcase) Encoding() error {
	return s.EncodingFor(s.cfg.Encoding.Samples)
}

// EncodingFor transforms each sample with its own strategy
func (s *Showcase) EncodingFor(samples []config.Sample) error {
	done := logging.LogOperationStart(s.logger, "encoding")
	defer done()

	if err := s.header(s.cfg.Messages.Headers.Strategy); err != nil {
		return err
	}

	encryptors := make([]encoding.Encryptor, 0, len(samples))
	for _, sample := range samples {
		strategy, err := encoding.Create(sample.Strategy)
		if err != nil {
			return err
		}
		encryptors = append(encryptors, encoding.NewEncryptor(strategy))
	}

	for i, enc := range encryptors {
		if err := enc.EncryptTo(s.out, samples[i].Text); err != nil {
			return err
		}
	}
	return nil
}

func (s *Showcase) header(title string) error {
	if !s.headers || title == "" {
		return nil
	}
	return s.println(style.RenderHeader(title))
}

func (s *Showcase) println(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}
