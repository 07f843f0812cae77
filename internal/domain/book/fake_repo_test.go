package book

import (
	"context"
	"errors"
	"time"
)

var errStorage = errors.New("storage unavailable")

// fakeRepo 内存仓储,记录调用次数
type fakeRepo struct {
	books  map[uint]*Book
	nextID uint
	clock  time.Time

	creates, updates, deletes, reads int
	lastPredicates                   []Predicate
	failList                         bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		books:  make(map[uint]*Book),
		nextID: 1,
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepo) Create(_ context.Context, b *Book) error {
	r.creates++
	b.ID = r.nextID
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	cp := *b
	cp.CreatedAt = r.clock
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	r.reads++
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, b *Book) error {
	r.updates++
	if _, ok := r.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	r.deletes++
	delete(r.books, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context, preds []Predicate) ([]*Book, error) {
	r.lastPredicates = preds
	if r.failList {
		return nil, errStorage
	}
	out := make([]*Book, 0, len(r.books))
	for _, b := range r.books {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) writes() int {
	return r.creates + r.updates + r.deletes
}
