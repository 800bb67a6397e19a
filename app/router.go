package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

var validPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]+$`).MatchString

// Router dispatches a transaction to the handler registered for the path
// of its message, much like net/http.ServeMux does for requests.
type Router struct {
	routes map[string]custody.Handler
}

var (
	_ custody.Registry = (*Router)(nil)
	_ custody.Handler  = (*Router)(nil)
)

func NewRouter() *Router {
	return &Router{routes: make(map[string]custody.Handler)}
}

// Handle registers h for every message with the path of m. It panics on a
// malformed path or when the path is taken.
func (r *Router) Handle(m custody.Msg, h custody.Handler) {
	path := m.Path()
	if !validPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, taken := r.routes[path]; taken {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

func (r *Router) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

func (r *Router) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) route(tx custody.Tx) (custody.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "nil message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())
	}
	return h, nil
}
