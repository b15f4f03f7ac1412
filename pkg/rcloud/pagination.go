package rcloud

import (
	"context"
	"fmt"
)

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 100

// PageLister fetches one page of items starting at the given offset. It is
// implemented by the list operations of the resource clients; implementations
// return the items for the page and whether another page may follow.
type PageLister[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// PaginationOptions configures the page-walking helpers.
type PaginationOptions struct {
	// PageSize is the limit passed to each page fetch. Defaults to
	// DefaultPageSize.
	PageSize int

	// MaxPages bounds the number of pages fetched. Zero means unbounded.
	MaxPages int
}

func (o *PaginationOptions) pageSize() int {
	if o == nil || o.PageSize <= 0 {
		return DefaultPageSize
	}

	return o.PageSize
}

func (o *PaginationOptions) maxPages() int {
	if o == nil {
		return 0
	}

	return o.MaxPages
}

// PaginationIterator walks an offset/limit paginated collection page by page.
type PaginationIterator[T any] struct {
	ctx      context.Context
	list     PageLister[T]
	pageSize int
	maxPages int

	offset  int
	pages   int
	done    bool
	current []T
}

// NewPaginationIterator creates an iterator over the given lister.
func NewPaginationIterator[T any](ctx context.Context, list PageLister[T], opts *PaginationOptions) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:      ctx,
		list:     list,
		pageSize: opts.pageSize(),
		maxPages: opts.maxPages(),
	}
}

// HasNext reports whether another page is available.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	if it.maxPages > 0 && it.pages >= it.maxPages {
		return false
	}

	return true
}

// Next fetches the next page of items. It returns ErrNoMoreItems once the
// collection is exhausted.
func (it *PaginationIterator[T]) Next() ([]T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	items, err := it.list(it.ctx, it.offset, it.pageSize)
	if err != nil {
		it.done = true

		return nil, fmt.Errorf("fetching page at offset %d: %w", it.offset, err)
	}

	it.offset += len(items)
	it.pages++

	// A short page means the collection is exhausted.
	if len(items) < it.pageSize {
		it.done = true
	}

	if len(items) == 0 {
		return nil, ErrNoMoreItems
	}

	it.current = items

	return items, nil
}

// Current returns the most recently fetched page.
func (it *PaginationIterator[T]) Current() []T {
	return it.current
}

// All drains the iterator and returns every remaining item.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		items, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems {
				break
			}

			return nil, err
		}

		all = append(all, items...)
	}

	return all, nil
}

// ForEach invokes fn for every remaining item. Iteration stops on the first
// error returned by fn.
func (it *PaginationIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		items, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems {
				return nil
			}

			return err
		}

		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
		}
	}

	return nil
}

// FetchAllPages fetches every page from the lister and returns the combined
// items.
func FetchAllPages[T any](ctx context.Context, list PageLister[T], opts *PaginationOptions) ([]T, error) {
	return NewPaginationIterator(ctx, list, opts).All()
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages in the background and delivers them on the
// returned channel. The channel is closed once the collection is exhausted,
// an error occurs, or the context is cancelled; a fetch error arrives as the
// final PageResult.
func StreamPages[T any](ctx context.Context, list PageLister[T], opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		it := NewPaginationIterator(ctx, list, opts)

		for it.HasNext() {
			items, err := it.Next()
			if err != nil {
				if err == ErrNoMoreItems {
					return
				}

				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: items}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
