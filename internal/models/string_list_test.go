package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"Engineer", "Designer"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Engineer","Designer"]`, v)
}

func TestStringListScan(t *testing.T) {
	var l StringList

	require.NoError(t, l.Scan(`["Engineer"]`))
	assert.Equal(t, StringList{"Engineer"}, l)

	require.NoError(t, l.Scan([]byte(`["A","B"]`)))
	assert.Equal(t, StringList{"A", "B"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan("null"))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("{not json"))
}

func TestStringListContainsIsCaseSensitive(t *testing.T) {
	l := StringList{"Engineer"}
	assert.True(t, l.Contains("Engineer"))
	assert.False(t, l.Contains("engineer"))
}
