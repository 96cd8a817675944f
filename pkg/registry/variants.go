package registry

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/arthur-debert/patterns/pkg/logging"
)

// Constructor builds a fresh instance of one variant
type Constructor[T any] func() T

// Variants maps discriminants to constructors for one behavior family.
// Every discriminant resolves to exactly one constructor; aliases resolve to
// a canonical name first. Lookups never fall back to a default variant.
type Variants[T any] struct {
	family       string
	constructors *Registry[Constructor[T]]
	aliases      *Registry[string]
}

// NewVariants creates an empty variant registry for the named family
func NewVariants[T any](family string) *Variants[T] {
	return &Variants[T]{
		family:       family,
		constructors: New[Constructor[T]](family + " constructor"),
		aliases:      New[string](family + " alias"),
	}
}

// Family returns the family name used in errors and logs
func (v *Variants[T]) Family() string {
	return v.family
}

// Register adds a constructor under a canonical name
func (v *Variants[T]) Register(name string, ctor Constructor[T]) error {
	if ctor == nil {
		return errors.Newf(errors.ErrInvalidInput, "%s variant '%s' has no constructor", v.family, name)
	}
	key := normalize(name)
	if v.aliases.Has(key) {
		return errors.Newf(errors.ErrAlreadyExists, "%s variant '%s' is already an alias", v.family, key)
	}
	return v.constructors.Register(key, ctor)
}

// MustRegister registers a constructor and panics on failure
func (v *Variants[T]) MustRegister(name string, ctor Constructor[T]) {
	if err := v.Register(name, ctor); err != nil {
		panic(fmt.Sprintf("failed to register %s variant %s: %v", v.family, name, err))
	}
}

// Unregister removes a canonical variant and every alias pointing at it
func (v *Variants[T]) Unregister(name string) error {
	key := normalize(name)
	if err := v.constructors.Remove(key); err != nil {
		return v.unknown(name)
	}
	v.aliases.RemoveFunc(func(_ string, target string) bool { return target == key })
	return nil
}

// Alias makes alias resolve to the already registered canonical name
func (v *Variants[T]) Alias(alias, name string) error {
	key, target := normalize(alias), normalize(name)
	if !v.constructors.Has(target) {
		return v.unknown(name)
	}
	if v.constructors.Has(key) {
		return errors.Newf(errors.ErrAlreadyExists, "%s alias '%s' shadows a variant", v.family, key)
	}
	return v.aliases.Register(key, target)
}

// Resolve maps a discriminant or alias to its canonical name
func (v *Variants[T]) Resolve(discriminant string) (string, error) {
	key := normalize(discriminant)
	if v.constructors.Has(key) {
		return key, nil
	}
	if target, err := v.aliases.Get(key); err == nil {
		return target, nil
	}
	return "", v.unknown(discriminant)
}

// Create builds a new instance of the variant selected by discriminant
func (v *Variants[T]) Create(discriminant string) (T, error) {
	var zero T

	name, err := v.Resolve(discriminant)
	if err != nil {
		return zero, err
	}

	ctor, err := v.constructors.Get(name)
	if err != nil {
		return zero, errors.Wrapf(err, errors.ErrInternal, "%s variant '%s' vanished", v.family, name)
	}

	logger := logging.GetLogger("registry")
	logger.Trace().
		Str("family", v.family).
		Str("discriminant", discriminant).
		Str("variant", name).
		Msg("Creating variant")

	return ctor(), nil
}

// MustCreate is Create for discriminants known to be registered
func (v *Variants[T]) MustCreate(discriminant string) T {
	item, err := v.Create(discriminant)
	if err != nil {
		panic(fmt.Sprintf("failed to create %s: %v", discriminant, err))
	}
	return item
}

// Names returns the canonical variant names in sorted order
func (v *Variants[T]) Names() []string {
	return v.constructors.List()
}

// Aliases returns the registered aliases in sorted order
func (v *Variants[T]) Aliases() []string {
	return v.aliases.List()
}

func (v *Variants[T]) unknown(discriminant string) error {
	return errors.Newf(errors.ErrUnknownVariant, "unknown %s variant '%s' (known: %s)",
		v.family, discriminant, strings.Join(v.Names(), ", ")).
		WithDetail("family", v.family).
		WithDetail("discriminant", discriminant).
		WithDetail("known", v.Names())
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
