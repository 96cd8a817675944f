package config

import (
	"strings"

	"github.com/arthur-debert/patterns/pkg/encoding"
	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/arthur-debert/patterns/pkg/users"
)

// Validate checks that every configured discriminant resolves, that label
// templates are usable and that the sample tree builds. Values that are
// printed as one output line may not contain line breaks.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Messages.InvalidChoice) == "" {
		return errors.New(errors.ErrConfigValid, "messages.invalid_choice cannot be empty")
	}

	for key, value := range map[string]string{
		"messages.invalid_choice": c.Messages.InvalidChoice,
		"tree.directory_label":    c.Tree.DirectoryLabel,
		"tree.file_label":         c.Tree.FileLabel,
		"tree.indent":             c.Tree.Indent,
	} {
		if strings.ContainsAny(value, "\r\n") {
			return errors.Newf(errors.ErrConfigValid, "%s must be a single line, got %q", key, value).
				WithDetail("key", key)
		}
	}

	for _, role := range c.Users.Roles {
		if _, err := users.Variants().Resolve(role); err != nil {
			return err
		}
	}

	for i, sample := range c.Encoding.Samples {
		if _, err := encoding.Variants().Resolve(sample.Strategy); err != nil {
			if pErr, ok := err.(*errors.PatternsError); ok {
				pErr.WithDetail("sample", i)
			}
			return err
		}
	}

	for key, template := range map[string]string{
		"tree.directory_label": c.Tree.DirectoryLabel,
		"tree.file_label":      c.Tree.FileLabel,
	} {
		if strings.Count(template, "%") != 1 || !strings.Contains(template, "%s") {
			return errors.Newf(errors.ErrConfigValid, "%s must contain exactly one %%s, got %q", key, template).
				WithDetail("key", key)
		}
	}

	if _, err := c.SampleTree(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "tree.sample is not a valid tree")
	}

	return nil
}
