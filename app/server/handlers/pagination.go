package handlers

import (
	"math"
	"orpheo-api/app/server/store"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

type listResponse[T any] struct {
	Limit   int   `json:"limit"`
	PageMax int64 `json:"pageMax"`
	Total   int64 `json:"total"`
	List    []T   `json:"list"`
}

func (a *App) parsePagination(page *uint, limit *uint) (store.Page, int) {
	// Before: 1-based page number, page size
	// After: offset and size
	var parsedPage, parsedLimit uint

	if page == nil || *page < 1 {
		parsedPage = 0
	} else {
		parsedPage = *page - 1
	}

	switch {
	case limit == nil || *limit == 0:
		parsedLimit = defaultPageLimit
	case *limit > maxPageLimit:
		parsedLimit = maxPageLimit
	default:
		parsedLimit = *limit
	}

	// Offset must stay within int
	if maxPage := uint(math.MaxInt) / parsedLimit; parsedPage > maxPage {
		parsedPage = maxPage
	}

	return store.Page{Offset: int(parsedPage * parsedLimit), Limit: int(parsedLimit)}, int(parsedLimit)
}

func (a *App) calcMaxPage(count int64, limit int) int64 {
	pageMax := count / int64(limit)
	if (count % int64(limit)) != 0 {
		pageMax++
	}
	return pageMax
}
