package serializer

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"pnp-mapper/schema"
)

var (
	ErrSerializerNotFound  = errors.New("no serializer registered")
	ErrAmbiguousSerializer = errors.New("ambiguous serializer registrations")
	ErrDuplicateDefault    = errors.New("default serializer already registered")
	ErrRegistryFrozen      = errors.New("registry is frozen")
	ErrInvalidRegistration = errors.New("invalid serializer registration")
)

// Registration is one serializer registered for a domain type.
type Registration struct {
	DomainType reflect.Type
	MinVersion schema.Version
	Default    bool
	Serializer Serializer

	// Order of the serializer within a whole-document conversion, per direction.
	SerializationSequence   int
	DeserializationSequence int
}

// Sequence returns the order of r in direction d.
func (r Registration) Sequence(d Direction) int {
	if d == DirectionSerialize {
		return r.SerializationSequence
	}

	return r.DeserializationSequence
}

func (r Registration) String() string {
	return fmt.Sprintf("%s@%s", r.DomainType, r.MinVersion)
}

// RegisterOption configures a Registration.
type RegisterOption func(*Registration)

// WithSequence sets the same sequence for both directions.
func WithSequence(sequence int) RegisterOption {
	return func(r *Registration) {
		r.SerializationSequence = sequence
		r.DeserializationSequence = sequence
	}
}

// WithSequences sets the sequence of each direction.
func WithSequences(serialization, deserialization int) RegisterOption {
	return func(r *Registration) {
		r.SerializationSequence = serialization
		r.DeserializationSequence = deserialization
	}
}

// Registry holds serializer registrations. Registration happens before
// Freeze; lookups are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	frozen bool
	byType map[reflect.Type][]Registration
	types  []reflect.Type // registration order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[reflect.Type][]Registration)}
}

// Register adds s for domainType from schema version minVersion on.
// Only one registration per domain type and version may be the default.
func (r *Registry) Register(domainType reflect.Type, minVersion schema.Version, isDefault bool, s Serializer, opts ...RegisterOption) error {
	if domainType == nil || s == nil {
		return fmt.Errorf("%w: domain type and serializer are required", ErrInvalidRegistration)
	}

	reg := Registration{
		DomainType: domainType,
		MinVersion: minVersion,
		Default:    isDefault,
		Serializer: s,
	}

	for _, opt := range opts {
		opt(&reg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: cannot register %s", ErrRegistryFrozen, reg)
	}

	existing := r.byType[domainType]
	if isDefault {
		for _, e := range existing {
			if e.Default && e.MinVersion == minVersion {
				return fmt.Errorf("%w: %s", ErrDuplicateDefault, reg)
			}
		}
	}

	if len(existing) == 0 {
		r.types = append(r.types, domainType)
	}

	r.byType[domainType] = append(existing, reg)

	return nil
}

// Freeze ends registration.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}

// Resolve returns the serializer of domainType for the target version.
func (r *Registry) Resolve(domainType reflect.Type, target schema.Version) (Serializer, error) {
	reg, err := r.Registration(domainType, target)
	if err != nil {
		return nil, err
	}

	return reg.Serializer, nil
}

// Registration returns the registration Resolve would use.
//
// Registrations with MinVersion above target are ignored; of the rest the
// highest MinVersion wins. Several registrations at that version are
// decided by the default flag.
func (r *Registry) Registration(domainType reflect.Type, target schema.Version) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return pick(r.byType[domainType], domainType, target)
}

// Selected returns one registration per domain type applicable to target,
// ordered by their sequence in direction d. Domain types with no
// registration old enough for target are left out.
func (r *Registry) Selected(target schema.Version, d Direction) ([]Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, 0, len(r.types))

	for _, t := range r.types {
		reg, err := pick(r.byType[t], t, target)
		if errors.Is(err, ErrSerializerNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		out = append(out, reg)
	}

	slices.SortStableFunc(out, func(a, b Registration) int {
		return cmp.Compare(a.Sequence(d), b.Sequence(d))
	})

	return out, nil
}

func pick(regs []Registration, domainType reflect.Type, target schema.Version) (Registration, error) {
	var (
		best       []Registration
		bestMinVer schema.Version
	)

	for _, reg := range regs {
		switch {
		case reg.MinVersion > target:
			continue
		case len(best) == 0 || reg.MinVersion > bestMinVer:
			best = []Registration{reg}
			bestMinVer = reg.MinVersion
		case reg.MinVersion == bestMinVer:
			best = append(best, reg)
		}
	}

	switch len(best) {
	case 0:
		return Registration{}, fmt.Errorf("%w: %s for schema %s", ErrSerializerNotFound, domainType, target)
	case 1:
		return best[0], nil
	}

	for _, reg := range best {
		if reg.Default {
			return reg, nil
		}
	}

	return Registration{}, fmt.Errorf("%w: %d candidates for %s at schema %s and none is the default",
		ErrAmbiguousSerializer, len(best), domainType, bestMinVer)
}
