package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, Pagination{}.Limit())
	assert.Equal(t, 10, Pagination{PageSize: 10}.Limit())
	assert.Equal(t, MaxPageSize, Pagination{PageSize: 1000}.Limit())
}

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: 1234567890123})
	require.NoError(t, err)

	after, err := Pagination{PageToken: token}.After()
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890123), after)

	_, err = Pagination{PageToken: "%%%"}.After()
	assert.Error(t, err)
}

func TestTrim(t *testing.T) {
	rows := []int64{9, 8, 7}

	page, info := Trim(rows, 2, func(v int64) int64 { return v })
	assert.Equal(t, []int64{9, 8}, page)
	assert.True(t, info.HasMore)

	after, err := Pagination{PageToken: info.NextPageToken}.After()
	require.NoError(t, err)
	assert.Equal(t, int64(8), after)

	page, info = Trim(rows, 5, func(v int64) int64 { return v })
	assert.Len(t, page, 3)
	assert.False(t, info.HasMore)
	assert.Empty(t, info.NextPageToken)
}
