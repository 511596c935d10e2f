package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("calendar.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "calendar.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "calendar.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("calendar.yaml", 0, stdErrors.New("missing"))
	require.Equal(t, "parse error: calendar.yaml: missing", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("color.a", "must be between 0 and 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "color.a", validationErr.Field)
	require.Contains(t, err.Error(), "must be between 0 and 1")
}

func TestLayoutErrorIncludesComponent(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("need 7 labels")
	err := NewLayoutError("week", "", underlying)

	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
	require.Equal(t, "week", layoutErr.Component)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "layout error [week]: need 7 labels", err.Error())
}

func TestRenderErrorIncludesFormat(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewRenderError("png", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "png", renderErr.Format)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "render error [png]")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var l *LayoutError
	var r *RenderError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, l.Error())
	require.Empty(t, r.Error())
	require.Nil(t, l.Unwrap())
}
