package form

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/upmkit/cli/internal/errors"
)

func stubForm(t *testing.T, fn func(ctx context.Context, form *huh.Form) error) {
	t.Helper()
	orig := runForm
	t.Cleanup(func() { runForm = orig })
	runForm = fn
}

func stubConfirm(t *testing.T, fn func(title, description string, value *bool) error) {
	t.Helper()
	orig := runConfirm
	t.Cleanup(func() { runConfirm = orig })
	runConfirm = fn
}

func TestHuhPrompterFill_KeepsValuesAndKeywords(t *testing.T) {
	called := false
	stubForm(t, func(_ context.Context, form *huh.Form) error {
		called = true
		assert.NotNil(t, form)
		return nil
	})

	f := Form{Company: "MyCo", Package: "cool-tool", Keywords: []string{"xr", "tools"}}
	err := HuhPrompter{}.Fill(context.Background(), &f, []Choice{{Value: "standard", Label: "standard"}})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "MyCo", f.Company)
	assert.Equal(t, []string{"xr", "tools"}, f.Keywords)
}

func TestHuhPrompterFill_AbortMapsToAbortedError(t *testing.T) {
	stubForm(t, func(context.Context, *huh.Form) error { return huh.ErrUserAborted })

	f := Defaults()
	err := HuhPrompter{}.Fill(context.Background(), &f, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrAborted))
}

func TestHuhPrompterFill_WrapsError(t *testing.T) {
	stubForm(t, func(context.Context, *huh.Form) error { return errors.New("tty unavailable") })

	f := Defaults()
	err := HuhPrompter{}.Fill(context.Background(), &f, nil)

	require.Error(t, err)
	assert.Equal(t, "prompt form: tty unavailable", err.Error())
}

func TestHuhPrompterConfirm(t *testing.T) {
	tests := []struct {
		name    string
		answer  bool
		runErr  error
		want    bool
		wantErr bool
	}{
		{name: "accepted", answer: true, want: true},
		{name: "declined", answer: false, want: false},
		{name: "escape counts as decline", runErr: huh.ErrUserAborted, want: false},
		{name: "terminal failure", runErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTitle string
			stubConfirm(t, func(title, _ string, value *bool) error {
				gotTitle = title
				*value = tt.answer
				return tt.runErr
			})

			got, err := HuhPrompter{}.Confirm("Replace com.myco.cool-tool?", "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Replace com.myco.cool-tool?", gotTitle)
		})
	}
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitKeywords(" a ,, b c ,"))
	assert.Nil(t, splitKeywords(""))
}
