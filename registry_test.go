package absence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallInto_Defaults(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, InstallInto(reg))

	got, ok := reg.Resolve(DefaultSentinelName)
	require.True(t, ok)
	assert.Same(t, Absent, got)

	raw, ok := reg.Resolve(DefaultPredicateName)
	require.True(t, ok)
	pred, ok := raw.(func(any) bool)
	require.True(t, ok)
	assert.True(t, pred(Absent))
	assert.False(t, pred(New()))
	assert.False(t, pred(42))
}

func TestInstallInto_CustomNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, InstallInto(reg,
		WithSentinelName("CustomAbsent"),
		WithPredicateName("customAbsent"),
	))

	got, ok := reg.Resolve("CustomAbsent")
	require.True(t, ok)
	assert.Same(t, Absent, got)
	_, ok = reg.Resolve("customAbsent")
	assert.True(t, ok)

	_, ok = reg.Resolve(DefaultSentinelName)
	assert.False(t, ok, "default names are untouched by a custom-name install")
}

func TestInstallInto_Partial(t *testing.T) {
	t.Run("without sentinel", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, InstallInto(reg, WithoutSentinel()))

		_, ok := reg.Resolve(DefaultSentinelName)
		assert.False(t, ok)
		_, ok = reg.Resolve(DefaultPredicateName)
		assert.True(t, ok)
	})

	t.Run("without predicate", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, InstallInto(reg, WithoutPredicate()))

		_, ok := reg.Resolve(DefaultSentinelName)
		assert.True(t, ok)
		_, ok = reg.Resolve(DefaultPredicateName)
		assert.False(t, ok)
	})

	t.Run("both skipped is a no-op", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, InstallInto(reg, WithoutSentinel(), WithoutPredicate()))
		assert.Zero(t, reg.Len())
	})
}

func TestInstallInto_Additive(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, InstallInto(reg))
	require.NoError(t, InstallInto(reg,
		WithSentinelName("Missing"),
		WithPredicateName("ismissing"),
	))

	for _, name := range []string{DefaultSentinelName, "Missing"} {
		got, ok := reg.Resolve(name)
		require.True(t, ok, name)
		assert.Same(t, Absent, got, name)
	}
	for _, name := range []string{DefaultPredicateName, "ismissing"} {
		_, ok := reg.Resolve(name)
		assert.True(t, ok, name)
	}
	assert.Equal(t, []string{"Absent", "Missing", "isabsent", "ismissing"}, reg.Names())
}

func TestInstallInto_Idempotent(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, InstallInto(reg))
	require.NoError(t, InstallInto(reg), "reinstalling identical values is not a conflict")
	assert.Equal(t, 2, reg.Len())
}

func TestInstallInto_RefusesConflicts(t *testing.T) {
	t.Run("sentinel name taken", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Bind(DefaultSentinelName, "unrelated"))

		err := InstallInto(reg)
		require.Error(t, err)
		assert.True(t, IsNameConflict(err))
		assert.ErrorIs(t, err, ErrNameConflict)
		assert.Contains(t, err.Error(), DefaultSentinelName)

		got, _ := reg.Resolve(DefaultSentinelName)
		assert.Equal(t, "unrelated", got, "existing binding is never clobbered")
		_, ok := reg.Resolve(DefaultPredicateName)
		assert.False(t, ok, "nothing is partially installed")
	})

	t.Run("predicate name taken", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Bind(DefaultPredicateName, 42))

		err := InstallInto(reg)
		require.Error(t, err)
		assert.True(t, IsNameConflict(err))

		_, ok := reg.Resolve(DefaultSentinelName)
		assert.False(t, ok, "nothing is partially installed")
	})

	t.Run("same name for both halves", func(t *testing.T) {
		reg := NewRegistry()
		err := InstallInto(reg,
			WithSentinelName("shared"),
			WithPredicateName("shared"),
		)
		require.Error(t, err)
		assert.True(t, IsNameConflict(err))
		assert.Zero(t, reg.Len())
	})
}

func TestInstall_DefaultRegistry(t *testing.T) {
	// Default-name installs are idempotent, so this test tolerates reruns
	// and other tests having installed before it.
	require.NoError(t, Install())

	got, ok := DefaultRegistry().Resolve(DefaultSentinelName)
	require.True(t, ok)
	assert.Same(t, Absent, got)

	raw, ok := DefaultRegistry().Resolve(DefaultPredicateName)
	require.True(t, ok)
	pred := raw.(func(any) bool)
	assert.True(t, pred(Absent))
}

func TestDefaultRegistry_Stable(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRegistry_Bind(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Bind("answer", 42))
	require.NoError(t, reg.Bind("answer", 42), "identical rebind is idempotent")

	err := reg.Bind("answer", 43)
	require.Error(t, err)
	assert.True(t, IsNameConflict(err))

	got, ok := reg.Resolve("answer")
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestRegistry_BindReferenceValues(t *testing.T) {
	reg := NewRegistry()
	fn := func(any) bool { return false }

	require.NoError(t, reg.Bind("fn", fn))
	require.NoError(t, reg.Bind("fn", fn), "same func value is the same binding")
	assert.NotPanics(t, func() {
		err := reg.Bind("fn", func(any) bool { return true })
		assert.True(t, IsNameConflict(err))
	})

	require.NoError(t, reg.Bind("nil", nil))
	require.NoError(t, reg.Bind("nil", nil))
	assert.True(t, IsNameConflict(reg.Bind("nil", 1)))
}

func TestRegistry_ConcurrentInstalls(t *testing.T) {
	reg := NewRegistry()

	done := make(chan error, 8)
	for i := range 8 {
		go func() {
			done <- InstallInto(reg,
				WithSentinelName(fmt.Sprintf("Absent%d", i)),
				WithPredicateName(fmt.Sprintf("isabsent%d", i)),
			)
		}()
	}
	for range 8 {
		require.NoError(t, <-done)
	}

	assert.Equal(t, 16, reg.Len())
	for i := range 8 {
		got, ok := reg.Resolve(fmt.Sprintf("Absent%d", i))
		require.True(t, ok)
		assert.Same(t, Absent, got)
	}
}

func TestInstallOptions_RejectEmptyNames(t *testing.T) {
	assert.Panics(t, func() { WithSentinelName("") })
	assert.Panics(t, func() { WithPredicateName("") })
}
