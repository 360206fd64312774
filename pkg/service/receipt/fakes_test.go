package receipt_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/mhaefliger/grocery/pkg/domain"
	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

// memDB is the in-memory state shared by the fake repositories.
type memDB struct {
	receipts   map[uint]dto.ReceiptRead
	items      []dto.ItemRead
	categories []dto.CategoryRead
	stores     []dto.StoreRead

	nextReceiptID  uint
	nextItemID     uint
	nextCategoryID uint
	nextStoreID    uint
}

func newMemDB() *memDB {
	return &memDB{receipts: map[uint]dto.ReceiptRead{}}
}

func (db *memDB) clone() *memDB {
	cp := *db
	cp.receipts = make(map[uint]dto.ReceiptRead, len(db.receipts))
	for id, r := range db.receipts {
		cp.receipts[id] = r
	}
	cp.items = append([]dto.ItemRead(nil), db.items...)
	cp.categories = append([]dto.CategoryRead(nil), db.categories...)
	cp.stores = append([]dto.StoreRead(nil), db.stores...)
	return &cp
}

// fakeUoW runs callbacks against memDB and emulates a rollback by restoring
// a snapshot when the callback errors. failItemsAfter injects a storage error
// on the n+1th item insert; negative means never fail.
type fakeUoW struct {
	db *memDB

	doCalls        int
	failItemsAfter int
	itemCreates    int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{db: newMemDB(), failItemsAfter: -1}
}

func (u *fakeUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.doCalls++
	snapshot := u.db.clone()
	if err := fn(u); err != nil {
		u.db = snapshot
		return err
	}
	return nil
}

func (u *fakeUoW) ReceiptRepository() (repository.ReceiptRepository, error) {
	return &fakeReceiptRepo{u: u}, nil
}

func (u *fakeUoW) ItemRepository() (repository.ItemRepository, error) {
	return &fakeItemRepo{u: u}, nil
}

func (u *fakeUoW) CategoryRepository() (repository.CategoryRepository, error) {
	return &fakeCategoryRepo{u: u}, nil
}

func (u *fakeUoW) StoreRepository() (repository.StoreRepository, error) {
	return &fakeStoreRepo{u: u}, nil
}

type fakeReceiptRepo struct{ u *fakeUoW }

func (r *fakeReceiptRepo) Create(ctx context.Context, create dto.ReceiptCreate) (*dto.ReceiptRead, error) {
	db := r.u.db
	db.nextReceiptID++
	rec := dto.ReceiptRead{
		ID:          db.nextReceiptID,
		Date:        create.Date,
		Store:       create.Store,
		Currency:    create.Currency,
		TotalAmount: create.TotalAmount,
		Notes:       create.Notes,
	}
	db.receipts[rec.ID] = rec
	return &rec, nil
}

func (r *fakeReceiptRepo) Get(ctx context.Context, id uint) (*dto.ReceiptRead, error) {
	rec, ok := r.u.db.receipts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, it := range r.u.db.items {
		if it.ReceiptID == id {
			it.CategoryName = r.u.db.categoryName(it.CategoryID)
			rec.Items = append(rec.Items, it)
		}
	}
	return &rec, nil
}

func (r *fakeReceiptRepo) Update(ctx context.Context, id uint, update dto.ReceiptUpdate) error {
	rec, ok := r.u.db.receipts[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Date = update.Date
	rec.Store = update.Store
	rec.Currency = update.Currency
	rec.TotalAmount = update.TotalAmount
	rec.Notes = update.Notes
	r.u.db.receipts[id] = rec
	return nil
}

func (r *fakeReceiptRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.u.db.receipts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.u.db.receipts, id)
	kept := r.u.db.items[:0]
	for _, it := range r.u.db.items {
		if it.ReceiptID != id {
			kept = append(kept, it)
		}
	}
	r.u.db.items = kept
	return nil
}

func (r *fakeReceiptRepo) List(ctx context.Context, filter dto.ReceiptFilter) ([]*dto.ReceiptSummary, error) {
	var out []*dto.ReceiptSummary
	for _, rec := range r.u.db.receipts {
		if len(filter.Stores) > 0 && !contains(filter.Stores, rec.Store) {
			continue
		}
		var count int64
		for _, it := range r.u.db.items {
			if it.ReceiptID == rec.ID {
				count++
			}
		}
		out = append(out, &dto.ReceiptSummary{
			ReceiptID:   rec.ID,
			Date:        rec.Date,
			Store:       rec.Store,
			Currency:    rec.Currency,
			TotalAmount: rec.TotalAmount,
			ItemCount:   count,
			Notes:       rec.Notes,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceiptID < out[j].ReceiptID })
	return out, nil
}

func (r *fakeReceiptRepo) DistinctStoreNames(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, rec := range r.u.db.receipts {
		if !seen[rec.Store] {
			seen[rec.Store] = true
			names = append(names, rec.Store)
		}
	}
	sort.Strings(names)
	return names, nil
}

type fakeItemRepo struct{ u *fakeUoW }

func (r *fakeItemRepo) Create(ctx context.Context, create dto.ItemCreate) (*dto.ItemRead, error) {
	if r.u.failItemsAfter >= 0 && r.u.itemCreates >= r.u.failItemsAfter {
		return nil, errors.New("insert items: connection reset")
	}
	r.u.itemCreates++
	db := r.u.db
	db.nextItemID++
	item := dto.ItemRead{
		ID:              db.nextItemID,
		ReceiptID:       create.ReceiptID,
		Name:            create.Name,
		Brand:           create.Brand,
		CategoryID:      create.CategoryID,
		Quantity:        create.Quantity,
		Unit:            create.Unit,
		PricePerUnit:    create.PricePerUnit,
		TotalPrice:      create.TotalPrice,
		NormalizedPrice: create.NormalizedPrice,
		NormalizedUnit:  create.NormalizedUnit,
		OriginalPrice:   create.OriginalPrice,
		Notes:           create.Notes,
	}
	db.items = append(db.items, item)
	return &item, nil
}

func (r *fakeItemRepo) ListByReceipt(ctx context.Context, receiptID uint) ([]*dto.ItemRead, error) {
	var out []*dto.ItemRead
	for _, it := range r.u.db.items {
		if it.ReceiptID == receiptID {
			it := it
			it.CategoryName = r.u.db.categoryName(it.CategoryID)
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) DeleteByReceipt(ctx context.Context, receiptID uint) error {
	kept := r.u.db.items[:0]
	for _, it := range r.u.db.items {
		if it.ReceiptID != receiptID {
			kept = append(kept, it)
		}
	}
	r.u.db.items = kept
	return nil
}

func (r *fakeItemRepo) DistinctNames(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, it := range r.u.db.items {
		if !seen[it.Name] {
			seen[it.Name] = true
			names = append(names, it.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

type fakeCategoryRepo struct{ u *fakeUoW }

func (r *fakeCategoryRepo) Create(ctx context.Context, create dto.CategoryCreate) (*dto.CategoryRead, error) {
	db := r.u.db
	for _, c := range db.categories {
		if strings.EqualFold(c.Name, create.Name) {
			return nil, domain.ErrAlreadyExists
		}
	}
	db.nextCategoryID++
	cat := dto.CategoryRead{
		ID:       db.nextCategoryID,
		Name:     create.Name,
		ParentID: create.ParentID,
		Icon:     create.Icon,
		Color:    create.Color,
	}
	db.categories = append(db.categories, cat)
	return &cat, nil
}

func (r *fakeCategoryRepo) Get(ctx context.Context, id uint) (*dto.CategoryRead, error) {
	for _, c := range r.u.db.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*dto.CategoryRead, error) {
	for _, c := range r.u.db.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCategoryRepo) List(ctx context.Context, topLevelOnly bool) ([]*dto.CategoryRead, error) {
	var out []*dto.CategoryRead
	for _, c := range r.u.db.categories {
		if topLevelOnly && c.ParentID != nil {
			continue
		}
		c := c
		out = append(out, &c)
	}
	return out, nil
}

type fakeStoreRepo struct{ u *fakeUoW }

func (r *fakeStoreRepo) Create(ctx context.Context, create dto.StoreCreate) (*dto.StoreRead, error) {
	db := r.u.db
	for _, s := range db.stores {
		if s.Name == create.Name {
			return nil, domain.ErrAlreadyExists
		}
	}
	db.nextStoreID++
	store := dto.StoreRead{ID: db.nextStoreID, Name: create.Name, Location: create.Location}
	db.stores = append(db.stores, store)
	return &store, nil
}

func (r *fakeStoreRepo) GetByName(ctx context.Context, name string) (*dto.StoreRead, error) {
	for _, s := range r.u.db.stores {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeStoreRepo) List(ctx context.Context) ([]*dto.StoreRead, error) {
	var out []*dto.StoreRead
	for _, s := range r.u.db.stores {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (db *memDB) categoryName(id *uint) *string {
	if id == nil {
		return nil
	}
	for _, c := range db.categories {
		if c.ID == *id {
			name := c.Name
			return &name
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
