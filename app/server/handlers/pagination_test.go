package handlers

import (
	"math"
	"testing"

	"orpheo-api/app/server/store"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	a := &App{}
	u := func(v uint) *uint { return &v }

	page, limit := a.parsePagination(nil, nil)
	assert.Equal(t, store.Page{Offset: 0, Limit: defaultPageLimit}, page)
	assert.Equal(t, defaultPageLimit, limit)

	page, _ = a.parsePagination(u(0), u(0))
	assert.Equal(t, store.Page{Offset: 0, Limit: defaultPageLimit}, page)

	page, _ = a.parsePagination(u(3), u(20))
	assert.Equal(t, store.Page{Offset: 40, Limit: 20}, page)

	_, limit = a.parsePagination(u(1), u(100000))
	assert.Equal(t, maxPageLimit, limit)
}

func TestParsePaginationHugePage(t *testing.T) {
	a := &App{}
	u := func(v uint) *uint { return &v }

	for _, p := range []uint{^uint(0) / 100, ^uint(0)} {
		page, limit := a.parsePagination(u(p), u(500))
		assert.Equal(t, 500, limit)
		assert.Positive(t, page.Offset)
		assert.Equal(t, math.MaxInt/500*500, page.Offset)
	}
}

func TestCalcMaxPage(t *testing.T) {
	a := &App{}

	assert.Equal(t, int64(0), a.calcMaxPage(0, 10))
	assert.Equal(t, int64(1), a.calcMaxPage(10, 10))
	assert.Equal(t, int64(2), a.calcMaxPage(11, 10))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2020-02-29")
	assert.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	d, err = parseDate("2020-02-29T10:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	d, err = parseDate("  ")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = parseDate("29/02/2020")
	assert.Error(t, err)
}
