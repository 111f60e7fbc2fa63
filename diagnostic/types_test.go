package diagnostic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/diagnostic"
)

var errCause = errors.New("cannot assign int to bool")

func TestDiagnostics_AddAndError(t *testing.T) {
	var d diagnostic.Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError(diagnostic.CodeFieldAssign, errCause, "schema.A -> model.B", "Items[0].Enabled")
	d.AddInfo(diagnostic.CodeDeprecatedField, "skipped", "", "Old")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, []string{"Items[0].Enabled"}, d.Fields())

	err := d.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, errCause)
	assert.Contains(t, err.Error(), "[schema.A -> model.B] Items[0].Enabled: [FIELD_ASSIGN] cannot assign int to bool")

	var diag diagnostic.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, diagnostic.DiagnosticError, diag.Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b diagnostic.Diagnostics

	a.AddError(diagnostic.CodeFieldAssign, errCause, "", "A")
	b.AddError(diagnostic.CodeFieldAssign, errCause, "", "B")
	b.AddInfo(diagnostic.CodeDeprecatedField, "skipped", "", "C")

	a.Merge(b)

	assert.Equal(t, []string{"A", "B"}, a.Fields())
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag diagnostic.Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: diagnostic.Diagnostic{Message: "plain"},
			want: "plain",
		},
		{
			name: "code and field",
			diag: diagnostic.Diagnostic{Code: "X", Message: "m", FieldPath: "F"},
			want: "F: [X] m",
		},
		{
			name: "everything",
			diag: diagnostic.Diagnostic{Code: "X", Message: "m", FieldPath: "F", TypePair: "A -> B"},
			want: "[A -> B] F: [X] m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", diagnostic.DiagnosticInfo.String())
	assert.Equal(t, "error", diagnostic.DiagnosticError.String())
	assert.Equal(t, "unknown", diagnostic.DiagnosticSeverity(9).String())
}
