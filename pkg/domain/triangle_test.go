package domain_test

import (
	"testing"
	"triangle/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestLabels_DistinctAndValid(t *testing.T) {
	labels := domain.Labels()
	require.Len(t, labels, 6)

	seen := map[domain.Label]bool{}
	for _, l := range labels {
		require.True(t, l.Valid(), "label %q should be valid", l)
		require.False(t, seen[l], "label %q is duplicate", l)
		seen[l] = true
	}
}

func TestParseLabel(t *testing.T) {
	l, err := domain.ParseLabel("RIGHT_SCALENE")
	require.NoError(t, err)
	require.Equal(t, domain.LabelRightScalene, l)

	_, err = domain.ParseLabel("right_scalene")
	require.Error(t, err)

	_, err = domain.ParseLabel("<missing>")
	require.Error(t, err)
}
