package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewError_Defaults(t *testing.T) {
	err := NewError(CategoryModel, "bad declaration").Build()

	require.Equal(t, CategoryModel, err.Category())
	require.Equal(t, SeverityError, err.Severity())
	require.Equal(t, "bad declaration", err.Message())
	require.Nil(t, err.Cause())
	require.Equal(t, "[model:error] bad declaration", err.Error())
}

func TestWrapError_PreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := WrapError(cause, CategoryFileSystem, "failed to write page").Build()

	require.Equal(t, cause, err.Cause())
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "disk full")
}

func TestBuilder_FatalAndContext(t *testing.T) {
	err := NewError(CategoryGeneration, "unsupported item kind").
		Fatal().
		WithContext("kind", "CallSignature").
		Build()

	require.True(t, err.IsFatal())
	require.True(t, IsFatal(err))
	v, ok := err.Context().GetString("kind")
	require.True(t, ok)
	require.Equal(t, "CallSignature", v)
}

func TestWithContext_ReturnsNewError(t *testing.T) {
	base := NewError(CategoryConfig, "missing input dir").Build()
	enriched := base.WithContext("path", "./model")

	_, ok := base.Context().Get("path")
	require.False(t, ok)
	got, ok := enriched.Context().GetString("path")
	require.True(t, ok)
	require.Equal(t, "./model", got)
}

func TestGetCategoryAndSeverity_Fallbacks(t *testing.T) {
	plain := stderrors.New("plain")
	require.Equal(t, CategoryInternal, GetCategory(plain))
	require.Equal(t, SeverityError, GetSeverity(plain))
	require.False(t, IsClassified(plain))

	classified := NewError(CategoryValidation, "bad").Warning().Build()
	require.Equal(t, CategoryValidation, GetCategory(classified))
	require.Equal(t, SeverityWarning, GetSeverity(classified))
}

func TestErrorContext_Merge(t *testing.T) {
	a := ErrorContext{"x": 1, "y": "old"}
	b := ErrorContext{"y": "new", "z": true}

	merged := a.Merge(b)
	require.Equal(t, 1, merged["x"])
	require.Equal(t, "new", merged["y"])
	require.Equal(t, true, merged["z"])
}
