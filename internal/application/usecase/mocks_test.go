package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"citystore/internal/domain/entity"
	"citystore/internal/domain/model"
	"citystore/pkg/apperr"
)

type stubWriter struct {
	id    primitive.ObjectID
	err   error
	got   *model.City
	calls int
}

func (w *stubWriter) Write(_ context.Context, city *model.City) (primitive.ObjectID, error) {
	w.calls++
	w.got = city
	if w.err != nil {
		return primitive.NilObjectID, w.err
	}

	return w.id, nil
}

type stubRetriever struct {
	city *model.City
	err  error
}

func (r *stubRetriever) GetByID(_ context.Context, _ primitive.ObjectID) (*model.City, error) {
	if r.err != nil {
		return nil, r.err
	}

	cp := *r.city

	return &cp, nil
}

type stubLister struct {
	cities []model.City
	err    error
}

func (l *stubLister) All(_ context.Context) ([]model.City, error) {
	return l.cities, l.err
}

type stubUpdater struct {
	err   error
	got   *model.City
	calls int
}

func (u *stubUpdater) Update(_ context.Context, city *model.City) error {
	u.calls++
	u.got = city

	return u.err
}

type stubRemover struct {
	err   error
	gotID primitive.ObjectID
	calls int
}

func (r *stubRemover) RemoveByID(_ context.Context, id primitive.ObjectID) error {
	r.calls++
	r.gotID = id

	return r.err
}

// fakeBlobStore records operations in order so tests can assert the
// save-before-remove discipline.
type fakeBlobStore struct {
	saveRef   string
	saveErr   error
	removeErr error
	saved     []*entity.StagedFile
	removed   []string
	ops       []string
}

func (s *fakeBlobStore) Save(_ context.Context, staged *entity.StagedFile) (string, error) {
	s.ops = append(s.ops, "save")
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, staged)

	return s.saveRef, nil
}

func (s *fakeBlobStore) Remove(_ context.Context, ref string) error {
	s.ops = append(s.ops, "remove "+ref)
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, ref)

	return nil
}

func (s *fakeBlobStore) PublicURL(ref string) string {
	return "http://cdn.test/" + ref
}

type stubPublisher struct {
	events []entity.CityEvent
	err    error
}

func (p *stubPublisher) Publish(_ context.Context, event entity.CityEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func notFoundErr() error {
	return apperr.New(apperr.NotFound, "city not found")
}
