package channel

import (
	"testing"

	"github.com/strainstack/catread/errs"
	"github.com/stretchr/testify/require"
)

func TestIsTimeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Time - 1", true},
		{"time channel", true},
		{"MEASURE TIME", true},
		{"Zeit 1 - Standardmessrate", true},
		{"ZEITKANAL", true},
		{"Force - 1", false},
		{"Temperature", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IsTimeName(tt.name), "name=%q", tt.name)
	}
}

func TestResolve_UniqueMatch(t *testing.T) {
	channels := []*Channel{
		testChannel("Time - 1", 5),
		testChannel("Force - 1", 5),
		testChannel("Strain - 1", 5),
	}

	issues := Resolve(channels, EarliestDeclared)

	require.Empty(t, issues)
	require.Equal(t, KindTimeCandidate, channels[0].Kind)
	require.Equal(t, NoTime, channels[0].TimeIndex)
	require.Equal(t, KindData, channels[1].Kind)
	require.Equal(t, 0, channels[1].TimeIndex)
	require.Equal(t, KindData, channels[2].Kind)
	require.Equal(t, 0, channels[2].TimeIndex)
}

func TestResolve_NoMatchStaysUnresolved(t *testing.T) {
	channels := []*Channel{
		testChannel("Time - 1", 5),
		testChannel("Force - 1", 7), // no time channel with 7 entries
	}

	issues := Resolve(channels, EarliestDeclared)

	require.Empty(t, issues)
	require.Equal(t, KindUnresolved, channels[1].Kind)
	require.Equal(t, NoTime, channels[1].TimeIndex)
}

func TestResolve_OrphanTimeCandidate(t *testing.T) {
	// A time channel whose length matches no data channel stays a valid,
	// dependent-less time candidate.
	channels := []*Channel{
		testChannel("Time - 1", 5),
		testChannel("Force - 1", 5),
		testChannel("Time - 2", 3),
	}

	issues := Resolve(channels, EarliestDeclared)

	require.Empty(t, issues)
	require.Equal(t, KindTimeCandidate, channels[2].Kind)
	require.Equal(t, 0, channels[1].TimeIndex)
}

func TestResolve_Ambiguity(t *testing.T) {
	t.Run("default policy picks earliest declared", func(t *testing.T) {
		channels := []*Channel{
			testChannel("Time - 1", 5),
			testChannel("Time - 2", 5),
			testChannel("Force - 1", 5),
		}

		issues := Resolve(channels, EarliestDeclared)

		require.Equal(t, 0, channels[2].TimeIndex)
		require.Equal(t, KindData, channels[2].Kind)
		require.Len(t, issues, 1)
		require.ErrorIs(t, issues[0].Err, errs.ErrAmbiguousTimeChannel)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		for range 10 {
			channels := []*Channel{
				testChannel("Time - 1", 5),
				testChannel("Time - 2", 5),
				testChannel("Force - 1", 5),
			}
			Resolve(channels, EarliestDeclared)
			require.Equal(t, 0, channels[2].TimeIndex)
		}
	})

	t.Run("nil policy leaves unresolved", func(t *testing.T) {
		channels := []*Channel{
			testChannel("Time - 1", 5),
			testChannel("Time - 2", 5),
			testChannel("Force - 1", 5),
		}

		issues := Resolve(channels, nil)

		require.Equal(t, KindUnresolved, channels[2].Kind)
		require.Equal(t, NoTime, channels[2].TimeIndex)
		require.Len(t, issues, 1)
		require.ErrorIs(t, issues[0].Err, errs.ErrAmbiguousTimeChannel)
	})

	t.Run("custom policy picks by name", func(t *testing.T) {
		channels := []*Channel{
			testChannel("Time - 1", 5),
			testChannel("Time - 2", 5),
			testChannel("Force - 1", 5),
		}
		preferSecond := func(_ int, candidates []int, chans []*Channel) (int, bool) {
			for _, ci := range candidates {
				if chans[ci].Name == "Time - 2" {
					return ci, true
				}
			}

			return 0, false
		}

		Resolve(channels, preferSecond)
		require.Equal(t, 1, channels[2].TimeIndex)
	})

	t.Run("declining policy leaves unresolved", func(t *testing.T) {
		channels := []*Channel{
			testChannel("Time - 1", 5),
			testChannel("Time - 2", 5),
			testChannel("Force - 1", 5),
		}
		decline := func(int, []int, []*Channel) (int, bool) { return 0, false }

		Resolve(channels, decline)
		require.Equal(t, KindUnresolved, channels[2].Kind)
	})
}

func TestResolve_EmptyChannel(t *testing.T) {
	channels := []*Channel{
		testChannel("Time - 1", 5),
		testChannel("Force - 1", 0),
		testChannel("Strain - 1", 5),
	}

	issues := Resolve(channels, EarliestDeclared)

	// The empty channel is reported and excluded, the rest of the file still
	// resolves.
	require.Len(t, issues, 1)
	require.Equal(t, 1, issues[0].ChannelIndex)
	require.ErrorIs(t, issues[0].Err, errs.ErrEmptyChannel)
	require.Equal(t, KindUnresolved, channels[1].Kind)
	require.Equal(t, 0, channels[2].TimeIndex)
}

func TestResolve_EmptyTimeCandidateDoesNotAnchor(t *testing.T) {
	channels := []*Channel{
		testChannel("Time - 1", 0),
		testChannel("Force - 1", 0),
	}

	issues := Resolve(channels, EarliestDeclared)

	require.Len(t, issues, 2)
	require.Equal(t, KindUnresolved, channels[0].Kind)
	require.Equal(t, KindUnresolved, channels[1].Kind)
}

func TestIssue_String(t *testing.T) {
	i := Issue{ChannelIndex: 2, Name: "Force - 1", Err: errs.ErrEmptyChannel}
	require.Equal(t, `channel 2 ("Force - 1"): channel has no samples`, i.String())
}
