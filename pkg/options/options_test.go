package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		o := New()
		o.Set("BUILD", "debug")
		o.Set("BUILD", "release")
		assert.Equal(t, "release", o.Get("BUILD"))
		assert.Equal(t, 1, o.Len())
	})

	t.Run("empty value is still present", func(t *testing.T) {
		o := New()
		o.Set("--debug", "")
		assert.True(t, o.Has("--debug"))
		v, ok := o.Lookup("--debug")
		assert.True(t, ok)
		assert.Empty(t, v)
		assert.False(t, o.Has("--static"))
	})

	t.Run("merge overwrites", func(t *testing.T) {
		o := FromMap(map[string]string{"A": "1", "B": "2"})
		o.Merge(FromMap(map[string]string{"B": "3", "C": "4"}))
		assert.Equal(t, map[string]string{"A": "1", "B": "3", "C": "4"}, o.Map())
		assert.Equal(t, []string{"A", "B", "C"}, o.Keys())
	})

	t.Run("merge nil", func(t *testing.T) {
		o := New()
		o.Merge(nil)
		assert.Zero(t, o.Len())
	})
}

func TestFeatures(t *testing.T) {
	f := Features{"wxUSE_ZLIB": true, "wxUSE_ODBC": false}
	assert.True(t, f.Enabled("wxUSE_ZLIB"))
	assert.False(t, f.Enabled("wxUSE_ODBC"))
	assert.True(t, f.Defined("wxUSE_ODBC"))
	assert.False(t, f.Enabled("wxUSE_OLE"))
	assert.False(t, f.Defined("wxUSE_OLE"))
	assert.Equal(t, []string{"wxUSE_ODBC", "wxUSE_ZLIB"}, f.Names())
}
