package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"pnp-mapper/options"
)

func ExampleModeEnum() {
	mode := options.ModeNone.With(options.ModeRecursive, true)

	fmt.Println(mode.Has(options.ModeRecursive))
	fmt.Println(mode.Has(options.ModeDiscardFieldErrors))
	fmt.Println(options.ModeAll.Has(options.ModeRecursive | options.ModeDiscardFieldErrors))
	fmt.Println(options.ModeAll.With(options.ModeRecursive, false) == options.ModeDiscardFieldErrors)
	// Output:
	// true
	// false
	// true
	// true
}

func TestModeEnum_Combined(t *testing.T) {
	t.Parallel()

	var all, none options.ModeEnum = options.ModeAll, options.ModeNone

	assert.Equal(t, options.ModeRecursive|options.ModeDiscardFieldErrors, all)
	assert.Zero(t, none)
	assert.True(t, none.Has(options.ModeNone))
	assert.False(t, none.Has(options.ModeRecursive))
	assert.Equal(t, options.ModeNone, all.With(options.ModeAll, false))
}
